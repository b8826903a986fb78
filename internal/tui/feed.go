package tui

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"statuschip/internal/config"
)

type entryMsg config.Entry

type feedClosedMsg struct{}

func waitEntry(ch <-chan config.Entry) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return feedClosedMsg{}
		}
		return entryMsg(e)
	}
}

// ReadFeed streams newline-delimited JSON entries from r, e.g.
//   {"status":"error","message":"db down"}
// Blank lines are ignored and malformed lines are logged and skipped.
// The channel closes at EOF, on a read error, or when ctx is done.
func ReadFeed(ctx context.Context, r io.Reader, log logr.Logger) <-chan config.Entry {
	ch := make(chan config.Entry)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		line := 0
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text == "" {
				continue
			}
			var e config.Entry
			if err := json.Unmarshal([]byte(text), &e); err != nil {
				log.Error(err, "skipping malformed feed line", "line", line)
				continue
			}
			select {
			case ch <- e:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			log.Error(err, "feed read failed")
		}
	}()
	return ch
}
