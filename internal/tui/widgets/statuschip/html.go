package statuschip

import (
    "fmt"
    "html/template"
    "strings"
)

var chipTemplate = template.Must(template.New("chip").Parse(
    `<div{{with .ID}} id="{{.}}"{{end}} class="{{.Class}}" data-severity="{{.Severity}}" data-variant="{{.Variant}}" style="{{.Style}}">` +
        `<span class="status-chip-avatar" data-kind="{{.Kind}}" style="{{.AvatarStyle}}">` +
        `{{if .Image}}<img src="{{.Image}}" alt="">{{else if .Markup}}{{.Markup}}{{else}}{{.Marker}}{{end}}` +
        `</span>` +
        `<span class="status-chip-label">{{.Label}}</span>` +
        `{{if .Dismissible}}<button type="button" class="status-chip-delete" aria-label="dismiss">{{.DeleteIcon}}</button>{{end}}` +
        `</div>`))

type htmlChip struct {
    ID          string
    Class       string
    Severity    string
    Variant     string
    Style       template.CSS
    Kind        string
    AvatarStyle template.CSS
    Image       string
    Markup      template.HTML
    Marker      string
    Label       string
    Dismissible bool
    DeleteIcon  string
}

// HTML renders the chip as an HTML fragment. Label, marker and dismiss
// glyph are escaped; inline markup avatars are written verbatim.
func HTML(c Chip) (string, error) {
    hc := htmlChip{
        ID:          c.ID,
        Class:       c.ClassName,
        Severity:    c.Severity.String(),
        Variant:     c.Variant,
        Style:       template.CSS(fmt.Sprintf("align-self:flex-start;border:1px solid %s;color:%s", c.Color, c.Color)),
        Kind:        c.Avatar.Kind.String(),
        AvatarStyle: avatarCSS(c.Avatar),
        Label:       c.Label,
        Dismissible: c.Dismissible(),
        DeleteIcon:  c.DeleteIcon,
    }
    switch c.Avatar.Kind {
    case AvatarImage:
        hc.Image = c.Avatar.Image
    case AvatarMarkup:
        hc.Markup = template.HTML(c.Avatar.Markup)
    default:
        hc.Marker = c.Avatar.Marker.Text
    }
    var b strings.Builder
    if err := chipTemplate.Execute(&b, hc); err != nil {
        return "", fmt.Errorf("render chip html: %w", err)
    }
    return b.String(), nil
}

func avatarCSS(a Avatar) template.CSS {
    switch a.Kind {
    case AvatarImage:
        return ""
    case AvatarMarkup:
        return "display:flex;align-items:center;justify-content:center;width:100%;height:100%"
    }
    bg := "transparent"
    if a.Background != "" {
        bg = string(a.Background)
    }
    css := fmt.Sprintf("background-color:%s;color:%s", bg, a.Foreground)
    if a.Marker.IsIcon {
        css += fmt.Sprintf(";font-size:%dpx;color:%s", a.Marker.Size, a.Marker.Color)
    }
    if a.TextShadow {
        css += ";text-shadow:1px 1px 2px rgba(0,0,0,0.6)"
    }
    return template.CSS(css)
}
