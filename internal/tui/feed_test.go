package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"

	"statuschip/internal/config"
)

func TestReadFeedSkipsBadLines(t *testing.T) {
	in := strings.NewReader(`{"status":"error","message":"db"}

not json
{"status":"s","message":"ok","content":"<svg/>"}
`)
	var got []config.Entry
	for e := range ReadFeed(context.Background(), in, logr.Discard()) {
		got = append(got, e)
	}
	assert.Equal(t, []config.Entry{
		{Status: "error", Message: "db"},
		{Status: "s", Message: "ok", Content: "<svg/>"},
	}, got)
}

func TestReadFeedStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := ReadFeed(ctx, strings.NewReader("{\"message\":\"a\"}\n{\"message\":\"b\"}\n"), logr.Discard())
	cancel()
	n := 0
	for range ch {
		n++
	}
	assert.LessOrEqual(t, n, 2)
}

func TestWaitEntry(t *testing.T) {
	ch := make(chan config.Entry, 1)
	ch <- config.Entry{Message: "x"}
	assert.Equal(t, entryMsg{Message: "x"}, waitEntry(ch)())
	close(ch)
	assert.Equal(t, feedClosedMsg{}, waitEntry(ch)())
}
