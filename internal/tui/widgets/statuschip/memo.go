package statuschip

import (
    "statuschip/internal/tui/state"
    "statuschip/internal/tui/util"
)

// memoKey holds every input Build reads. Funcs are not comparable, so only
// the presence of OnClose is part of the key.
type memoKey struct {
    value     state.StatusValue
    id        string
    className string
    dynamic   string
    content   string
    withIcons bool
    icon      string
    closable  bool
    theme     util.Palette
}

// Memo caches the last built chip. It is not safe for concurrent use; a
// render loop owns one Memo per chip.
type Memo struct {
    key   memoKey
    chip  Chip
    valid bool
    hits  int
}

// Build returns the cached chip when the props are unchanged and rebuilds
// it otherwise. The OnClose passed in is always the one attached.
func (m *Memo) Build(v state.StatusValue, opts Options) Chip {
    k := memoKey{
        value:     v,
        id:        opts.ID,
        className: opts.ClassName,
        dynamic:   opts.DynamicClassName,
        content:   opts.Content,
        withIcons: opts.WithIcons,
        icon:      opts.Icon,
        closable:  opts.OnClose != nil,
        theme:     opts.Theme,
    }
    if m.valid && m.key == k {
        m.hits++
        c := m.chip
        c.OnDelete = opts.OnClose
        return c
    }
    m.key = k
    m.chip = Build(v, opts)
    m.valid = true
    return m.chip
}

// Hits counts how many calls were served from the cache.
func (m *Memo) Hits() int { return m.hits }

// Reset drops the cached chip.
func (m *Memo) Reset() { *m = Memo{} }
