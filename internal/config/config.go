package config

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"
    "strings"

    "github.com/goccy/go-yaml"

    "statuschip/internal/tui/state"
)

// Board is a file of status chips shown together:
// {"withIcons": true, "statuses": [{"status": "...", "message": "...", "content": "..."}]}
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
type Board struct {
    Title       string  `json:"title,omitempty" yaml:"title,omitempty"`
    WithIcons   bool    `json:"withIcons,omitempty" yaml:"withIcons,omitempty"`
    Dismissible bool    `json:"dismissible,omitempty" yaml:"dismissible,omitempty"`
    DeleteIcon  string  `json:"deleteIcon,omitempty" yaml:"deleteIcon,omitempty"`
    Statuses    []Entry `json:"statuses" yaml:"statuses"`
}

// Entry is one chip. Content is an .svg URL or inline <svg> markup and
// is trusted as-is.
type Entry struct {
    Status  string `json:"status" yaml:"status"`
    Message string `json:"message" yaml:"message"`
    Content string `json:"content,omitempty" yaml:"content,omitempty"`
    ID      string `json:"id,omitempty" yaml:"id,omitempty"`
    Class   string `json:"class,omitempty" yaml:"class,omitempty"`
}

// Value returns the status/message pair the chip renders.
func (e Entry) Value() state.StatusValue {
    return state.StatusValue{Status: e.Status, Message: e.Message}
}

func isYAML(path string) bool {
    switch strings.ToLower(filepath.Ext(path)) {
    case ".yaml", ".yml":
        return true
    }
    return false
}

func Load(path string) (*Board, error) {
    data, err := os.ReadFile(ExpandPath(path))
    if err != nil {
        return nil, fmt.Errorf("read board: %w", err)
    }
    return Parse(data, isYAML(path))
}

// Parse decodes a board from JSON, or YAML when asYAML is set.
func Parse(data []byte, asYAML bool) (*Board, error) {
    var b Board
    if asYAML {
        if err := yaml.Unmarshal(data, &b); err != nil {
            return nil, fmt.Errorf("parse board YAML: %w", err)
        }
    } else if err := json.Unmarshal(data, &b); err != nil {
        return nil, fmt.Errorf("parse board JSON: %w", err)
    }
    if err := Validate(&b); err != nil {
        return nil, err
    }
    return &b, nil
}

// Validate checks the invariants a board must hold. Status and message
// may be empty; an empty status renders as info. The message identifies a
// chip (live updates replace by message), so messages must be unique.
func Validate(b *Board) error {
    if b == nil || len(b.Statuses) == 0 {
        return fmt.Errorf("board has no statuses")
    }
    seen := make(map[string]int, len(b.Statuses))
    for i, e := range b.Statuses {
        if j, dup := seen[e.Message]; dup {
            return fmt.Errorf("statuses %d and %d share message %q", j+1, i+1, e.Message)
        }
        seen[e.Message] = i
    }
    return nil
}

// Values lists the status values in board order.
func Values(b *Board) []state.StatusValue {
    out := make([]state.StatusValue, 0, len(b.Statuses))
    for _, e := range b.Statuses {
        out = append(out, e.Value())
    }
    return out
}

// Shallow copy board (entries are plain values).
func Clone(b *Board) *Board {
    out := *b
    out.Statuses = append([]Entry(nil), b.Statuses...)
    return &out
}

func Save(path string, b *Board) error {
    var (
        data []byte
        err  error
    )
    if isYAML(path) {
        data, err = yaml.Marshal(b)
    } else {
        data, err = json.MarshalIndent(b, "", "  ")
    }
    if err != nil {
        return fmt.Errorf("encode board: %w", err)
    }
    return os.WriteFile(ExpandPath(path), data, 0644)
}

// ExpandPath resolves ~/ and environment variables and makes p absolute.
func ExpandPath(p string) string {
    p = strings.TrimSpace(p)
    if strings.HasPrefix(p, "~/") {
        if h, err := os.UserHomeDir(); err == nil {
            p = filepath.Join(h, p[2:])
        }
    }
    p = os.ExpandEnv(p)
    if !filepath.IsAbs(p) {
        if abs, err := filepath.Abs(p); err == nil { p = abs }
    }
    return p
}
