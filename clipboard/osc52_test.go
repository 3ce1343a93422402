package clipboard

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestWriteOSC52(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.NilError(t, writeOSC52(&buf, "web-01\tdegraded", "xterm-256color"))

	out := buf.String()
	assert.Assert(t, strings.HasPrefix(out, "\x1b]52;c;"), "got %q", out)
	assert.Assert(t, strings.Contains(out, base64.StdEncoding.EncodeToString([]byte("web-01\tdegraded"))))
}

func TestWriteOSC52_Tmux(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.NilError(t, writeOSC52(&buf, "x", "tmux-256color"))
	assert.Assert(t, strings.HasPrefix(buf.String(), "\x1bPtmux;"), "got %q", buf.String())
}
