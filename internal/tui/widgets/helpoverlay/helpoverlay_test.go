package helpoverlay

import (
    "strings"
    "testing"

    "statuschip/internal/tui/state"
)

func TestViewShowsMarkerMode(t *testing.T) {
    h := NewHelpOverlay()
    if out := h.View(state.UIState{WithIcons: true}); !strings.HasPrefix(out, "Help (Markers: icons)") {
        t.Fatalf("unexpected header: %q", out)
    }
    out := h.View(state.UIState{})
    for _, w := range []string{"Markers: initials", "Navigation:", "x: dismiss", "i: toggle icons/initials"} {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in help", w)
        }
    }
}
