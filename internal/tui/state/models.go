package state

// UIState holds cross-widget state for the chip gallery: the status bar,
// help overlay and chip list all read from it.
type UIState struct {
    // Chips currently on the board (dismissed ones are removed)
    Items  []StatusValue
    Cursor int

    // Display toggles
    WithIcons bool
    NoColor   bool
    ShowHelp  bool

    // Layout
    Width int

    // Counters & notices
    Dismissed int
    Notice    string
}

// Selected returns the chip under the cursor, if any.
func (s UIState) Selected() (StatusValue, bool) {
    if s.Cursor < 0 || s.Cursor >= len(s.Items) {
        return StatusValue{}, false
    }
    return s.Items[s.Cursor], true
}
