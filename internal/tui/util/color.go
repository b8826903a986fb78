package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"

    "statuschip/internal/tui/state"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines the theme colors used across widgets. Each severity has
// exactly one color.
type Palette struct {
    Info      lipgloss.Color
    Success   lipgloss.Color
    Warning   lipgloss.Color
    Danger    lipgloss.Color
    Muted     lipgloss.Color
    MutedDark lipgloss.Color
    OnColor   lipgloss.Color // text drawn over a filled severity color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Info:      lipgloss.Color("#3D6DFF"),
        Success:   lipgloss.Color("#2AA876"),
        Warning:   lipgloss.Color("#F0AD4E"),
        Danger:    lipgloss.Color("#D9534F"),
        Muted:     lipgloss.Color("#6C757D"),
        MutedDark: lipgloss.Color("#5A5A5A"),
        OnColor:   lipgloss.Color("#FFFFFF"),
    }
}

// ForSeverity returns the theme color for a severity.
func (p Palette) ForSeverity(sev state.Severity) lipgloss.Color {
    switch sev {
    case state.Success:
        return p.Success
    case state.Warning:
        return p.Warning
    case state.Error:
        return p.Danger
    default:
        return p.Info
    }
}
