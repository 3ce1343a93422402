package main

import "strings"

type ColumnRole int

const (
	RoleNormal  ColumnRole = iota
	RolePrimary            // Details
	RoleSecondary
)

type ColumnMeta struct {
	Name     string
	Index    int
	Role     ColumnRole
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

func newColumn(name string, index int) ColumnMeta {
	role := detectRole(name)
	return ColumnMeta{
		Name:     name,
		Index:    index,
		Role:     role,
		Visible:  true,
		MinWidth: defaultMinWidthForRole(role),
		Weight:   defaultWeightForRole(role),
	}
}

func detectRole(name string) ColumnRole {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "details", "message", "description":
		return RolePrimary
	case "id", "time", "timestamp":
		return RoleSecondary
	default:
		return RoleNormal
	}
}

func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RolePrimary:
		return 30
	case RoleSecondary:
		return 12
	default:
		return 8
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RolePrimary:
		return 5.0
	case RoleSecondary:
		return 2.0
	default:
		return 1.0
	}
}

// hideEmptyColumns hides every non-primary column with no data in any row.
func hideEmptyColumns(cols []ColumnMeta, rows []tableRow) {
	for i := range cols {
		hasData := false
		for _, r := range rows {
			if cols[i].Index < len(r.cells) && strings.TrimSpace(r.cells[cols[i].Index]) != "" {
				hasData = true
				break
			}
		}
		if !hasData && cols[i].Role != RolePrimary {
			cols[i].Visible = false
			cols[i].Width = 0
			cols[i].Weight = 0
		}
	}
}

// layoutColumns sizes visible columns to fill totalWidth: each gets its
// MinWidth, and whatever is left is shared by Weight.
func layoutColumns(cols []ColumnMeta, totalWidth int) {
	if totalWidth <= 0 {
		return
	}

	minSum := 0
	weightSum := 0.0
	for i := range cols {
		if !cols[i].Visible {
			continue
		}
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		for i := range cols {
			if cols[i].Visible {
				cols[i].Width = min(cols[i].MinWidth, totalWidth)
			}
		}
		return
	}

	remaining := totalWidth - minSum
	for i := range cols {
		if !cols[i].Visible {
			cols[i].Width = 0
			continue
		}
		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}
}
