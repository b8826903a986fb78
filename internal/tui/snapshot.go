package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"statuschip/internal/config"
	"statuschip/internal/tui/views/board"
)

var (
	diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	diffDelChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	diffAddChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
)

// Snapshot renders the board without color, one chip per line. The same
// board always yields the same snapshot.
func Snapshot(b *config.Board, withIcons bool) string {
	return board.RenderBoard(b, withIcons, true)
}

// WriteSnapshot stores a snapshot at path.
func WriteSnapshot(path, snap string) error {
	if err := os.WriteFile(config.ExpandPath(path), []byte(snap), 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// CheckSnapshot compares got with the snapshot stored at path. When they
// differ it returns a rendered diff and ok=false.
func CheckSnapshot(path, got string) (diff string, ok bool, err error) {
	want, err := os.ReadFile(config.ExpandPath(path))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, fmt.Errorf("no snapshot at %s (run with --write first): %w", path, err)
	}
	if err != nil {
		return "", false, fmt.Errorf("read snapshot: %w", err)
	}
	if string(want) == got {
		return "", true, nil
	}
	return RenderDiff(string(want), got), false, nil
}

// RenderDiff renders a line diff with char-level highlights for changed
// line pairs. Extra or missing trailing lines are shown whole.
func RenderDiff(want, got string) string {
	if want == got {
		return "No changes\n"
	}
	wLines := strings.Split(strings.TrimSuffix(want, "\n"), "\n")
	gLines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	n := len(wLines)
	if len(gLines) > n {
		n = len(gLines)
	}
	var sb strings.Builder
	d := dmp.New()
	for i := 0; i < n; i++ {
		switch {
		case i >= len(gLines):
			sb.WriteString(diffDelLine.Render("- "+wLines[i]) + "\n")
			continue
		case i >= len(wLines):
			sb.WriteString(diffAddLine.Render("+ "+gLines[i]) + "\n")
			continue
		case wLines[i] == gLines[i]:
			sb.WriteString("  " + wLines[i] + "\n")
			continue
		}
		diffs := d.DiffMain(wLines[i], gLines[i], false)
		diffs = d.DiffCleanupSemantic(diffs)
		sb.WriteString(diffDelLine.Render("- "))
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffDelete:
				sb.WriteString(diffDelChar.Render(df.Text))
			case dmp.DiffEqual:
				sb.WriteString(diffDelLine.Render(df.Text))
			}
		}
		sb.WriteString("\n")
		sb.WriteString(diffAddLine.Render("+ "))
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffInsert:
				sb.WriteString(diffAddChar.Render(df.Text))
			case dmp.DiffEqual:
				sb.WriteString(diffAddLine.Render(df.Text))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
