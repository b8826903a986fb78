package statuschip

import (
    "strings"

    "github.com/charmbracelet/lipgloss"

    "statuschip/internal/tui/state"
    "statuschip/internal/tui/util"
)

// IconSize is the fixed glyph size (px) used by hosts that can size text.
const IconSize = 20

// Severity glyphs, shown when icons are enabled.
const (
    IconSuccess = "✔" // check-circle
    IconWarning = "⚠" // warning-triangle
    IconError   = "✖" // error
    IconInfo    = "ℹ" // info-circle
)

// TrustedMarkup is inline vector markup that hosts inject without escaping.
// Whoever builds a chip from untrusted content is responsible for
// validating it first; nothing in this package sanitizes it.
type TrustedMarkup string

// AvatarKind says which of the three avatar sources won.
type AvatarKind int

const (
    // AvatarMarker shows an icon glyph or the status initials.
    AvatarMarker AvatarKind = iota
    // AvatarImage shows an external .svg image by URL.
    AvatarImage
    // AvatarMarkup shows inline <svg> markup as trusted raw content.
    AvatarMarkup
)

func (k AvatarKind) String() string {
    switch k {
    case AvatarImage:
        return "image"
    case AvatarMarkup:
        return "markup"
    default:
        return "marker"
    }
}

// Marker is the computed visual for the AvatarMarker case.
type Marker struct {
    Text   string // glyph or initials
    IsIcon bool
    Color  lipgloss.Color
    Size   int // IconSize for glyphs, 0 for initials
}

// Avatar describes what sits at the start of the chip.
type Avatar struct {
    Kind   AvatarKind
    Image  string        // AvatarImage only
    Markup TrustedMarkup // AvatarMarkup only
    Marker Marker        // AvatarMarker only

    // Background is empty for a transparent avatar.
    Background lipgloss.Color
    Foreground lipgloss.Color // MutedDark for the terminal image/markup stand-ins
    TextShadow bool
    Fill       bool // markup is centered and sized to the avatar circle
}

// PickMarker returns the severity glyph when withIcons is set, otherwise
// the initials of the raw status text.
func PickMarker(sev state.Severity, withIcons bool, status string, p util.Palette) Marker {
    if !withIcons {
        return Marker{Text: util.Initials(status)}
    }
    m := Marker{IsIcon: true, Color: p.ForSeverity(sev), Size: IconSize}
    switch sev {
    case state.Success:
        m.Text = IconSuccess
    case state.Warning:
        m.Text = IconWarning
    case state.Error:
        m.Text = IconError
    default:
        m.Text = IconInfo
    }
    return m
}

// classifyContent decides which avatar source the content selects.
// An image URL wins over markup; empty content always falls back.
func classifyContent(content string) AvatarKind {
    lower := strings.ToLower(content)
    switch {
    case content == "":
        return AvatarMarker
    case strings.HasSuffix(lower, ".svg"):
        return AvatarImage
    case strings.HasPrefix(lower, "<svg"):
        return AvatarMarkup
    default:
        return AvatarMarker
    }
}

// ResolveAvatar picks, in order: an .svg image URL, inline <svg> markup,
// or the severity marker.
func ResolveAvatar(content string, v state.StatusValue, withIcons bool, p util.Palette) Avatar {
    sev := util.ClassifySeverity(v.Status)
    switch classifyContent(content) {
    case AvatarImage:
        return Avatar{Kind: AvatarImage, Image: content, Foreground: p.MutedDark}
    case AvatarMarkup:
        return Avatar{Kind: AvatarMarkup, Markup: TrustedMarkup(content), Fill: true, Foreground: p.MutedDark}
    }
    a := Avatar{
        Kind:   AvatarMarker,
        Marker: PickMarker(sev, withIcons, v.Status, p),
    }
    if withIcons {
        a.Foreground = p.ForSeverity(sev)
    } else {
        a.Background = p.ForSeverity(sev)
        a.Foreground = p.OnColor
        a.TextShadow = true
    }
    return a
}
