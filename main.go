package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/andareed/modalstate/config"
	"github.com/andareed/modalstate/logging"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var (
	logFile    string
	configFile string
	transition time.Duration
)

var rootCmd = &cobra.Command{
	Use:     "sfmodal [flags] <file.csv>",
	Short:   "Browse a CSV and inspect rows in dialogs",
	Version: Version,
	Args:    cobra.ExactArgs(1),
	RunE:    run,
	// usage is noise once the TUI has started
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&logFile, "debug", "", "write debug logs to file")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file (default $HOME/.config/sfmodal/config.toml)")
	rootCmd.Flags().DurationVar(&transition, "transition", 0, "how long a closed dialog stays on screen (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("transition") {
		cfg.Transition = transition
	}
	if logFile != "" {
		cfg.DebugLog = logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cleanup, err := logging.SetupLogging(cfg.DebugLog)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer cleanup()

	log.Println("sfmodal: Started")
	logging.Infof("config: transition=%s notice=%s", cfg.Transition, cfg.NoticeDuration)

	inputPath := args[0]
	tbl, err := loadCSVFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", inputPath, err)
	}

	m := newModel(tbl, cfg, inputPath)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Printf("Tea program error: %v", err)
		return err
	}
	return nil
}
