package statuschip

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "statuschip/internal/tui/state"
    "statuschip/internal/tui/util"
)

func TestResolveAvatarImageWinsRegardlessOfIcons(t *testing.T) {
    v := state.StatusValue{Status: "error", Message: "boom"}
    for _, withIcons := range []bool{true, false} {
        a := ResolveAvatar("static/Icon.SVG", v, withIcons, util.DefaultPalette())
        assert.Equal(t, AvatarImage, a.Kind)
        assert.Equal(t, "static/Icon.SVG", a.Image)
        assert.Empty(t, a.Marker.Text)
    }
}

func TestResolveAvatarInlineMarkup(t *testing.T) {
    markup := `<SVG xmlns="http://www.w3.org/2000/svg"><circle r="4"/></SVG>`
    a := ResolveAvatar(markup, state.StatusValue{Status: "info"}, false, util.DefaultPalette())
    assert.Equal(t, AvatarMarkup, a.Kind)
    assert.Equal(t, TrustedMarkup(markup), a.Markup)
    assert.True(t, a.Fill)
}

func TestResolveAvatarSuffixBeforePrefix(t *testing.T) {
    // Ends in .svg and starts with <svg: the URL rule is checked first.
    a := ResolveAvatar("<svg.svg", state.StatusValue{}, true, util.DefaultPalette())
    assert.Equal(t, AvatarImage, a.Kind)
}

func TestResolveAvatarFallback(t *testing.T) {
    p := util.DefaultPalette()
    v := state.StatusValue{Status: "warning low disk", Message: "Disk"}

    initials := ResolveAvatar("", v, false, p)
    assert.Equal(t, AvatarMarker, initials.Kind)
    assert.Equal(t, "WL", initials.Marker.Text)
    assert.False(t, initials.Marker.IsIcon)
    assert.Equal(t, p.Warning, initials.Background)
    assert.True(t, initials.TextShadow)

    icon := ResolveAvatar("", v, true, p)
    assert.Equal(t, IconWarning, icon.Marker.Text)
    assert.True(t, icon.Marker.IsIcon)
    assert.Equal(t, IconSize, icon.Marker.Size)
    assert.Empty(t, icon.Background, "icon avatars are transparent")
    assert.False(t, icon.TextShadow)

    other := ResolveAvatar("notes.png", v, true, p)
    assert.Equal(t, AvatarMarker, other.Kind, "non-svg content falls back to the marker")
}

func TestPickMarkerGlyphs(t *testing.T) {
    p := util.DefaultPalette()
    want := map[state.Severity]string{
        state.Success: IconSuccess,
        state.Warning: IconWarning,
        state.Error:   IconError,
        state.Info:    IconInfo,
    }
    for sev, glyph := range want {
        m := PickMarker(sev, true, "ignored", p)
        assert.Equal(t, glyph, m.Text)
        assert.Equal(t, p.ForSeverity(sev), m.Color)
    }
}

func TestBuildLabelIsVerbatim(t *testing.T) {
    msgs := []string{"", "  padded  ", "<b>bold</b>", "multi\nline"}
    for _, msg := range msgs {
        for _, content := range []string{"", "a.svg", "<svg/>"} {
            c := Build(state.StatusValue{Status: "s", Message: msg}, Options{Content: content})
            assert.Equal(t, msg, c.Label)
        }
    }
}

func TestBuildColorAndVariant(t *testing.T) {
    c := Build(state.StatusValue{Status: "ERROR", Message: "x"}, Options{})
    assert.Equal(t, state.Error, c.Severity)
    assert.Equal(t, util.DefaultPalette().Danger, c.Color)
    assert.Equal(t, VariantOutlined, c.Variant)
    assert.Equal(t, LibClassName, c.ClassName)
}

func TestBuildDismiss(t *testing.T) {
    v := state.StatusValue{Status: "info", Message: "x"}

    plain := Build(v, Options{})
    assert.False(t, plain.Dismissible())

    closed := 0
    c := Build(v, Options{OnClose: func() { closed++ }})
    require.True(t, c.Dismissible())
    assert.Equal(t, DefaultDeleteIcon, c.DeleteIcon)
    c.OnDelete()
    assert.Equal(t, 1, closed)

    custom := Build(v, Options{OnClose: func() {}, Icon: "×"})
    assert.Equal(t, "×", custom.DeleteIcon)
}

func TestBuildIdempotent(t *testing.T) {
    v := state.StatusValue{Status: "success", Message: "ok"}
    opts := Options{WithIcons: true, ID: "c1", ClassName: "x"}
    a, b := Build(v, opts), Build(v, opts)
    assert.Equal(t, a, b)
    assert.Equal(t, Render(a, true), Render(b, true))
    assert.Equal(t, Render(a, false), Render(b, false))
}

func TestClassNames(t *testing.T) {
    assert.Equal(t, "status-chip dyn fixed", ClassNames(LibClassName, " dyn ", "fixed"))
    assert.Equal(t, "status-chip", ClassNames(LibClassName, "", ""))
    assert.Empty(t, ClassNames())
}

func TestBuildUsesCustomTheme(t *testing.T) {
    theme := util.DefaultPalette()
    theme.Success = "#00FF00"
    c := Build(state.StatusValue{Status: "s"}, Options{Theme: theme})
    assert.EqualValues(t, "#00FF00", c.Color)
}

func TestBuildUsesMutedTones(t *testing.T) {
    p := util.DefaultPalette()
    v := state.StatusValue{Status: "s", Message: "m"}

    c := Build(v, Options{OnClose: func() {}})
    assert.Equal(t, p.Muted, c.DeleteColor)
    assert.Empty(t, Build(v, Options{}).DeleteColor)

    assert.Equal(t, p.MutedDark, Build(v, Options{Content: "a.svg"}).Avatar.Foreground)
    assert.Equal(t, p.MutedDark, Build(v, Options{Content: "<svg/>"}).Avatar.Foreground)
}
