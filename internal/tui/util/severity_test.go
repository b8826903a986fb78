package util

import (
    "testing"

    "statuschip/internal/tui/state"
)

func TestClassifySeverityExamples(t *testing.T) {
    cases := map[string]state.Severity{
        "Success!": state.Success,
        "warn":     state.Warning,
        "ERROR":    state.Error,
        "":         state.Info,
        "info":     state.Info,
        " success": state.Info, // only the first character counts
        "sx":       state.Success,
        "Érror":    state.Info,
    }
    for in, want := range cases {
        if got := ClassifySeverity(in); got != want {
            t.Fatalf("ClassifySeverity(%q) = %v, want %v", in, got, want)
        }
    }
}

func TestClassifySeverityIsTotal(t *testing.T) {
    inputs := []string{"", " ", "\x00", "🙂 ok", "s", "W", "e\n", "zzz", "\xff\xfe"}
    for _, in := range inputs {
        switch ClassifySeverity(in) {
        case state.Info, state.Success, state.Warning, state.Error:
        default:
            t.Fatalf("ClassifySeverity(%q) returned an unknown severity", in)
        }
    }
}

func TestClassifySeverityFirstCharOnly(t *testing.T) {
    for _, pair := range [][2]string{{"s", "SOMETHING ELSE"}, {"w", "Wxyz"}, {"e", "eek"}} {
        if ClassifySeverity(pair[0]) != ClassifySeverity(pair[1]) {
            t.Fatalf("%q and %q should classify the same", pair[0], pair[1])
        }
    }
}

func TestInitials(t *testing.T) {
    cases := map[string]string{
        "success":             "S",
        "in progress":         "IP",
        "build  failed badly": "BF",
        "":                    "",
        "   ":                 "",
        "éclair done":         "ÉD",
        "🇫🇷 flag":            "🇫🇷F",
    }
    for in, want := range cases {
        if got := Initials(in); got != want {
            t.Fatalf("Initials(%q) = %q, want %q", in, got, want)
        }
    }
}

func TestPaletteForSeverity(t *testing.T) {
    p := DefaultPalette()
    if p.ForSeverity(state.Error) != p.Danger { t.Fatalf("error should map to danger") }
    if p.ForSeverity(state.Info) != p.Info { t.Fatalf("info should map to info") }
    if p.ForSeverity(state.Success) == p.ForSeverity(state.Warning) { t.Fatalf("severity colors must differ") }
}

func TestNoColorEnv(t *testing.T) {
    t.Setenv("NO_COLOR", "")
    if NoColor(false) { t.Fatalf("expected color enabled") }
    if !NoColor(true) { t.Fatalf("explicit flag should disable color") }
    t.Setenv("NO_COLOR", "1")
    if !NoColor(false) { t.Fatalf("NO_COLOR env should disable color") }
}
