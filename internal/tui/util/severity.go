package util

import (
    "strings"
    "unicode"
    "unicode/utf8"

    "github.com/rivo/uniseg"

    "statuschip/internal/tui/state"
)

// ClassifySeverity maps a free-text status to a severity using only its
// first character, case-insensitively:
//   s... -> Success, w... -> Warning, e... -> Error, anything else -> Info
// An empty status is looked up as a single space and therefore lands on Info.
func ClassifySeverity(status string) state.Severity {
    first := ' '
    if r, _ := utf8.DecodeRuneInString(strings.ToLower(status)); status != "" {
        first = r
    }
    switch first {
    case 's':
        return state.Success
    case 'w':
        return state.Warning
    case 'e':
        return state.Error
    }
    return state.Info
}

// maxInitials caps how many words contribute to Initials.
const maxInitials = 2

// Initials abbreviates a status to the uppercased first grapheme of each of
// its first two space-separated words ("in progress" -> "IP").
func Initials(status string) string {
    words := strings.FieldsFunc(status, unicode.IsSpace)
    if len(words) > maxInitials {
        words = words[:maxInitials]
    }
    var b strings.Builder
    for _, w := range words {
        cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(w, -1)
        b.WriteString(cluster)
    }
    return strings.ToUpper(b.String())
}
