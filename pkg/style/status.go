package style

import (
	"github.com/pterm/pterm"
)

// Status types for rules and move actions
type Status string

const (
	StatusOk      Status = "ok"      // Nothing misplaced / nothing to move
	StatusIssues  Status = "issues"  // Misplaced entries found
	StatusMoved   Status = "moved"   // Files were moved
	StatusPlanned Status = "planned" // Dry run, moves only planned
	StatusSkipped Status = "skipped" // Destination conflicts were skipped
	StatusError   Status = "error"   // Scan or move errors
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusOk:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case StatusIssues:
		return pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	case StatusMoved:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusPlanned:
		return pterm.NewStyle(pterm.FgCyan)
	case StatusSkipped:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Marker returns the status glyph, unicode or plain per settings.
func Marker(status Status, unicode bool) string {
	if unicode {
		switch status {
		case StatusOk, StatusMoved:
			return "✓"
		case StatusIssues, StatusSkipped:
			return "✗"
		case StatusPlanned:
			return "○"
		case StatusError:
			return "!"
		}
		return "•"
	}
	switch status {
	case StatusOk, StatusMoved:
		return "OK"
	case StatusIssues, StatusSkipped:
		return "X"
	case StatusPlanned:
		return "-"
	case StatusError:
		return "!"
	}
	return "-"
}
