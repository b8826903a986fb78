package state

// ToggleIcons flips between icon glyphs and text initials.
func ToggleIcons(s UIState) UIState {
    s.WithIcons = !s.WithIcons
    if s.WithIcons {
        s.Notice = "Icons: On"
    } else {
        s.Notice = "Icons: Off"
    }
    return s
}

// ToggleHelp shows or hides the key help.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}

// MoveUp moves the cursor one chip up, stopping at the top.
func MoveUp(s UIState) UIState {
    if s.Cursor > 0 {
        s.Cursor--
    }
    return s
}

// MoveDown moves the cursor one chip down, stopping at the bottom.
func MoveDown(s UIState) UIState {
    if s.Cursor < len(s.Items)-1 {
        s.Cursor++
    }
    return s
}

// Resize records the terminal width.
func Resize(s UIState, width int) UIState {
    s.Width = width
    return s
}

// Dismiss removes the chip at index i and keeps the cursor in range.
// Out-of-range indexes leave the state untouched.
func Dismiss(s UIState, i int) UIState {
    if i < 0 || i >= len(s.Items) {
        return s
    }
    items := make([]StatusValue, 0, len(s.Items)-1)
    items = append(items, s.Items[:i]...)
    items = append(items, s.Items[i+1:]...)
    s.Items = items
    s.Dismissed++
    if s.Cursor >= len(s.Items) {
        s.Cursor = len(s.Items) - 1
    }
    if s.Cursor < 0 {
        s.Cursor = 0
    }
    s.Notice = "Dismissed"
    return s
}

// Upsert replaces the chip with the same message or appends a new one.
// The live feed uses the message as the chip's identity.
func Upsert(s UIState, v StatusValue) UIState {
    items := make([]StatusValue, len(s.Items), len(s.Items)+1)
    copy(items, s.Items)
    for i := range items {
        if items[i].Message == v.Message {
            items[i] = v
            s.Items = items
            return s
        }
    }
    s.Items = append(items, v)
    return s
}

// SetNotice sets the ephemeral status bar message.
func SetNotice(s UIState, notice string) UIState {
    s.Notice = notice
    return s
}
