package statusbar

import (
    "fmt"
    "strings"

    "statuschip/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting gallery state.
func (StatusBar) View(s state.UIState) string {
    mode := "[INITIALS]"
    if s.WithIcons {
        mode = "[ICONS]"
    }
    color := "Color: On"
    if s.NoColor {
        color = "Color: Off"
    }
    pos := fmt.Sprintf("%d/%d", s.Cursor+1, len(s.Items))
    if len(s.Items) == 0 {
        pos = "0/0"
    }

    parts := []string{mode, color, pos}
    if s.Dismissed > 0 {
        parts = append(parts, fmt.Sprintf("Dismissed: %d", s.Dismissed))
    }
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
