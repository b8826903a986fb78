// Package statuschip builds and renders a status chip: an outlined,
// severity-colored label with an icon, initials or image avatar and an
// optional dismiss action.
//
// Build is pure. Hosts (View for terminals, HTML for pages) only read the
// Chip it returns.
package statuschip

import (
    "strings"

    "github.com/charmbracelet/lipgloss"

    "statuschip/internal/tui/state"
    "statuschip/internal/tui/util"
)

// LibClassName is always the first class name on a chip.
const LibClassName = "status-chip"

// DefaultDeleteIcon is shown on dismissible chips without an Icon override.
const DefaultDeleteIcon = "✕"

// VariantOutlined is the only chip variant.
const VariantOutlined = "outlined"

// Options are the optional props of a status chip. Every field is optional.
type Options struct {
    ID               string // passed through to the host
    ClassName        string
    DynamicClassName string

    // Content overrides the marker: a URL ending in .svg or inline
    // markup starting with <svg (treated as TrustedMarkup).
    Content string

    // WithIcons shows a severity glyph instead of the status initials.
    WithIcons bool

    // Icon replaces the default dismiss glyph.
    Icon string

    // OnClose makes the chip dismissible.
    OnClose func()

    // Theme defaults to util.DefaultPalette when zero.
    Theme util.Palette
}

// Chip is the host-independent description of a rendered status.
type Chip struct {
    ID         string
    ClassName  string
    Variant    string
    Severity   state.Severity
    Color      lipgloss.Color
    Avatar     Avatar
    Label      string
    OnDelete   func()
    DeleteIcon string
    // DeleteColor tints the dismiss glyph.
    DeleteColor lipgloss.Color
}

// Dismissible reports whether the chip carries a dismiss action.
func (c Chip) Dismissible() bool { return c.OnDelete != nil }

// ClassNames joins the library, dynamic and static class names, skipping
// empty ones.
func ClassNames(names ...string) string {
    parts := make([]string, 0, len(names))
    for _, n := range names {
        if n = strings.TrimSpace(n); n != "" {
            parts = append(parts, n)
        }
    }
    return strings.Join(parts, " ")
}

func (o Options) palette() util.Palette {
    if o.Theme == (util.Palette{}) {
        return util.DefaultPalette()
    }
    return o.Theme
}

// Build derives the chip for v. Calling it twice with the same input gives
// the same chip.
func Build(v state.StatusValue, opts Options) Chip {
    p := opts.palette()
    sev := util.ClassifySeverity(v.Status)
    c := Chip{
        ID:        opts.ID,
        ClassName: ClassNames(LibClassName, opts.DynamicClassName, opts.ClassName),
        Variant:   VariantOutlined,
        Severity:  sev,
        Color:     p.ForSeverity(sev),
        Avatar:    ResolveAvatar(opts.Content, v, opts.WithIcons, p),
        Label:     v.Message,
    }
    if opts.OnClose != nil {
        c.OnDelete = opts.OnClose
        c.DeleteIcon = DefaultDeleteIcon
        c.DeleteColor = p.Muted
    }
    if opts.Icon != "" {
        c.DeleteIcon = opts.Icon
    }
    return c
}
