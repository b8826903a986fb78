package board

import (
    "fmt"
    "html/template"
    "strings"

    "statuschip/internal/config"
    "statuschip/internal/tui/state"
    "statuschip/internal/tui/util"
    chips "statuschip/internal/tui/widgets/statuschip"
)

// ChipOptions maps a board entry onto chip options. onClose is attached
// only when the board is dismissible.
func ChipOptions(b *config.Board, e config.Entry, withIcons bool, onClose func()) chips.Options {
    opts := chips.Options{
        ID:        e.ID,
        ClassName: e.Class,
        Content:   e.Content,
        WithIcons: withIcons,
        Icon:      b.DeleteIcon,
    }
    if b.Dismissible && onClose != nil {
        opts.OnClose = onClose
    }
    return opts
}

// RenderBoard renders every chip of the board, one per line. NO_COLOR in
// the environment forces the plain rendering.
func RenderBoard(b *config.Board, withIcons, noColor bool) string {
    noColor = util.NoColor(noColor)
    var sb strings.Builder
    if b.Title != "" {
        sb.WriteString(b.Title + "\n")
    }
    for _, e := range b.Statuses {
        c := chips.Build(e.Value(), ChipOptions(b, e, withIcons, func() {}))
        sb.WriteString(chips.Render(c, noColor))
        sb.WriteString("\n")
    }
    return sb.String()
}

// RenderRow renders plain status values on a single row.
func RenderRow(values []state.StatusValue, withIcons, noColor bool) string {
    return chips.View(values, chips.Options{WithIcons: withIcons}, noColor)
}

// RenderHTML renders the board as a standalone HTML page.
func RenderHTML(b *config.Board, withIcons bool) (string, error) {
    var sb strings.Builder
    title := b.Title
    if title == "" {
        title = "Status"
    }
    fmt.Fprintf(&sb, "<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>%s</title></head>\n<body style=\"display:flex;flex-direction:column;gap:8px\">\n", template.HTMLEscapeString(title))
    for _, e := range b.Statuses {
        c := chips.Build(e.Value(), ChipOptions(b, e, withIcons, func() {}))
        frag, err := chips.HTML(c)
        if err != nil {
            return "", fmt.Errorf("chip %q: %w", e.Message, err)
        }
        sb.WriteString(frag + "\n")
    }
    sb.WriteString("</body></html>\n")
    return sb.String(), nil
}
