package helpoverlay

import (
    "fmt"
    "strings"

    "statuschip/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current marker mode indicated.
func (HelpOverlay) View(s state.UIState) string {
    mode := "initials"
    if s.WithIcons {
        mode = "icons"
    }
    sections := []struct{
        title string
        keys  []string
    }{
        {"Navigation", []string{"↑/k: previous chip", "↓/j: next chip"}},
        {"Chip", []string{"x: dismiss (dismissible boards)", "y: copy message"}},
        {"View", []string{"i: toggle icons/initials", "?: toggle this help"}},
        {"Exit", []string{"q/ctrl+c: quit"}},
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Markers: %s)\n", mode)
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.title)
        for _, k := range sec.keys {
            fmt.Fprintf(&b, "  %s\n", k)
        }
    }
    return b.String()
}
