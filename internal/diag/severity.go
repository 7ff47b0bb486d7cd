package diag

import "github.com/fatih/color"

// Severity orders diagnostics; a Bag with any SevError marks the file as
// unformattable.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning // e.g. a mismatched end label
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// paint окрашивает имя уровня для терминала.
func (s Severity) paint(useColor bool) string {
	var c *color.Color
	switch s {
	case SevInfo:
		c = color.New(color.FgCyan)
	case SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	case SevError:
		c = color.New(color.FgRed, color.Bold)
	default:
		return s.String()
	}
	if useColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s.String())
}
