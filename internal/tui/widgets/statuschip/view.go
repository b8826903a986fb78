package statuschip

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "github.com/muesli/termenv"

    "statuschip/internal/tui/state"
    "statuschip/internal/tui/util"
)

// Terminal stand-ins for avatars a terminal cannot draw.
const (
    imageGlyph  = "▣"
    markupGlyph = "◇"
)

// View renders a row of status chips with the same options. Color is
// dropped when noColor is set or NO_COLOR is present in the environment.
func View(values []state.StatusValue, opts Options, noColor bool) string {
    if len(values) == 0 {
        return ""
    }
    noColor = util.NoColor(noColor)

    parts := make([]string, 0, 2*len(values))
    for i, v := range values {
        if i > 0 {
            parts = append(parts, " ")
        }
        parts = append(parts, Render(Build(v, opts), noColor))
    }
    if noColor {
        return strings.Join(parts, "")
    }
    return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// Render draws one chip. With noColor the chip is a single plain line:
//   (avatar label [x])
func Render(c Chip, noColor bool) string {
    if noColor {
        return plainChip(c)
    }
    var b strings.Builder
    b.WriteString(renderAvatar(c.Avatar))
    b.WriteString(" ")
    b.WriteString(lipgloss.NewStyle().Foreground(c.Color).Render(c.Label))
    if c.Dismissible() {
        b.WriteString(" ")
        b.WriteString(lipgloss.NewStyle().Foreground(c.DeleteColor).Render(c.DeleteIcon))
    }
    return chipStyle(c).Render(b.String())
}

func chipStyle(c Chip) lipgloss.Style {
    return lipgloss.NewStyle().
        Border(lipgloss.RoundedBorder()).
        BorderForeground(c.Color).
        Padding(0, 1)
}

func renderAvatar(a Avatar) string {
    switch a.Kind {
    case AvatarImage:
        return termenv.Hyperlink(a.Image, lipgloss.NewStyle().Foreground(a.Foreground).Render(imageGlyph))
    case AvatarMarkup:
        // Vector markup cannot be drawn in a terminal; the HTML host injects it.
        return lipgloss.NewStyle().Foreground(a.Foreground).Render(markupGlyph)
    }
    style := lipgloss.NewStyle().Foreground(a.Foreground)
    if a.Background != "" {
        style = style.Background(a.Background).Padding(0, 1)
    }
    if a.TextShadow {
        // Closest terminal equivalent of a text shadow.
        style = style.Bold(true)
    }
    return style.Render(a.Marker.Text)
}

func plainChip(c Chip) string {
    var avatar string
    switch c.Avatar.Kind {
    case AvatarImage:
        avatar = fmt.Sprintf("[img %s]", c.Avatar.Image)
    case AvatarMarkup:
        avatar = "[svg]"
    default:
        avatar = c.Avatar.Marker.Text
    }
    parts := make([]string, 0, 3)
    if avatar != "" {
        parts = append(parts, avatar)
    }
    parts = append(parts, c.Label)
    if c.Dismissible() {
        parts = append(parts, "["+c.DeleteIcon+"]")
    }
    return "(" + strings.Join(parts, " ") + ")"
}
