// Copyright
// SPDX-License-Identifier: MIT
// statuschip: severity-colored status chips for terminals and HTML pages
package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "os"
    "os/signal"
    "path/filepath"
    "strings"
    "syscall"

    "github.com/go-logr/logr"
    "github.com/go-logr/logr/funcr"

    cfg "statuschip/internal/config"
    appTUI "statuschip/internal/tui"
    "statuschip/internal/tui/views/board"
)

const Version = "0.3.0"

const (
    defaultBoard = "status.board.json"
    snapExt      = ".snap"
)

/* ---------- CLI ---------- */

func main() {
    if len(os.Args) < 2 {
        usage()
        return
    }
    switch os.Args[1] {
    case "help", "-h", "--help":
        if len(os.Args) > 2 {
            helpTopic(os.Args[2])
        } else {
            usage()
        }
    case "version", "--version":
        fmt.Println("statuschip", Version)
        return
    case "init":
        cmdInit()
    case "render":
        cmdRender()
    case "html":
        cmdHTML()
    case "gallery":
        cmdGallery()
    case "watch":
        cmdWatch()
    case "snapshot":
        cmdSnapshot()
    default:
        usage()
    }
}

func usage() {
    fmt.Print(`statuschip ` + Version + `
Status chips: a severity color and icon (or initials) derived from a status string, plus a message.
USAGE
  statuschip <command> [options]
COMMANDS
  init         Scaffold status.board.json
  render       Print the chips of a board (or one --status/--message pair)
  html         Write the chips of a board as an HTML page
  gallery      Browse a board interactively (dismiss, copy, toggle icons)
  watch        Like gallery, with chips updated from NDJSON on stdin
  snapshot     Check a board against its saved snapshot (or --write it)
  help         Show help (try: statuschip help render)
  version      Print version
NOTES
  • Severity comes from the first letter of the status: s=success, w=warning, e=error, else info.
  • NO_COLOR is honored everywhere; use -v or -vv for logs on stderr.

`)
}

func helpTopic(name string) {
    switch name {
    case "render":
        fmt.Print(`USAGE
  statuschip render [--board PATH] [--icons] [--row] [--no-color]
  statuschip render --status TEXT --message TEXT [--content URL|MARKUP] [--icons] [--closable] [--delete-icon GLYPH]
DESCRIPTION
  Prints one chip per line. --content takes a URL ending in .svg (shown as an image)
  or inline markup starting with <svg (trusted, written as-is by the html command).

`)
    case "gallery", "watch":
        fmt.Print(`USAGE
  statuschip gallery [--board PATH] [--icons] [--no-color] [-v | -vv]
  producer | statuschip watch [--board PATH] [--icons] [--no-color] [-v | -vv]
DESCRIPTION
  watch reads lines like {"status":"error","message":"db down"} from stdin and
  updates the chip with the same message, or adds a new one.
KEYS
  ↑/k ↓/j move   i icons/initials   x dismiss   y copy message   ? help   q quit

`)
    case "snapshot":
        fmt.Print(`USAGE
  statuschip snapshot [--board PATH] [--out PATH] [--icons] [--write]
DESCRIPTION
  Renders the board without color and compares it with PATH (default: board path + .snap).
  Exits 1 and prints a diff when they differ. --write stores the current rendering.

`)
    default:
        usage()
    }
}

/* ---------- shared flags ---------- */

type commonFlags struct {
    board   *string
    icons   *bool
    noColor *bool
    verbose *bool
    debug   *bool
    fs      *flag.FlagSet
}

func newCommonFlags(name string) commonFlags {
    fs := flag.NewFlagSet(name, flag.ExitOnError)
    return commonFlags{
        fs:      fs,
        board:   fs.String("board", defaultBoard, "Board file (.json, .yaml or .yml)"),
        icons:   fs.Bool("icons", false, "Show severity icons instead of initials (overrides the board)"),
        noColor: fs.Bool("no-color", false, "Disable color output"),
        verbose: fs.Bool("v", false, "Verbose logs (INFO)"),
        debug:   fs.Bool("vv", false, "Debug logs (DEBUG)"),
    }
}

func (c commonFlags) logger() logr.Logger {
    verbosity := 0
    if *c.debug {
        verbosity = 2
    } else if *c.verbose {
        verbosity = 1
    }
    return newLogger(verbosity)
}

// withIcons resolves the icon setting: an explicit --icons wins over the board.
func (c commonFlags) withIcons(b *cfg.Board) bool {
    set := false
    c.fs.Visit(func(f *flag.Flag) {
        if f.Name == "icons" {
            set = true
        }
    })
    if set {
        return *c.icons
    }
    return b.WithIcons
}

func newLogger(verbosity int) logr.Logger {
    return funcr.New(func(prefix, args string) {
        if prefix != "" {
            fmt.Fprintln(os.Stderr, prefix, args)
            return
        }
        fmt.Fprintln(os.Stderr, args)
    }, funcr.Options{Verbosity: verbosity})
}

func fail(log logr.Logger, err error) {
    log.V(1).Info("command failed", "error", err.Error())
    fmt.Fprintln(os.Stderr, "error:", err)
    os.Exit(1)
}

func loadBoard(log logr.Logger, path string) *cfg.Board {
    b, err := cfg.Load(path)
    if err != nil {
        fail(log, err)
    }
    log.V(1).Info("loaded board", "path", path, "statuses", len(b.Statuses))
    return b
}

/* ---------- commands ---------- */

func cmdInit() {
    c := newCommonFlags("init")
    _ = c.fs.Parse(os.Args[2:])
    log := c.logger()

    if _, err := os.Stat(*c.board); errors.Is(err, os.ErrNotExist) {
        b := &cfg.Board{
            Title:       "Services",
            WithIcons:   true,
            Dismissible: true,
            Statuses: []cfg.Entry{
                {Status: "success", Message: "API healthy"},
                {Status: "warning", Message: "Queue backlog growing"},
                {Status: "error", Message: "Nightly backup failed"},
                {Status: "info", Message: "Deploy window opens 18:00"},
            },
        }
        if err := cfg.Save(*c.board, b); err != nil {
            fail(log, err)
        }
        log.V(1).Info("scaffolded board", "path", *c.board, "statuses", len(b.Statuses))
        fmt.Println("Wrote", *c.board)
    } else {
        fmt.Println(*c.board, "already exists; not overwriting")
    }
}

func cmdRender() {
    c := newCommonFlags("render")
    status := c.fs.String("status", "", "Status text for a single chip")
    message := c.fs.String("message", "", "Message (label) for a single chip")
    content := c.fs.String("content", "", "Avatar content: URL ending in .svg or inline <svg> markup")
    closable := c.fs.Bool("closable", false, "Render a dismiss glyph on the single chip")
    deleteIcon := c.fs.String("delete-icon", "", "Replace the default dismiss glyph")
    row := c.fs.Bool("row", false, "Print all chips on one row")
    _ = c.fs.Parse(os.Args[2:])
    log := c.logger()

    var b *cfg.Board
    if *status != "" || *message != "" {
        b = &cfg.Board{
            Dismissible: *closable,
            DeleteIcon:  *deleteIcon,
            Statuses:    []cfg.Entry{{Status: *status, Message: *message, Content: *content}},
        }
    } else {
        b = loadBoard(log, *c.board)
    }
    icons := c.withIcons(b)
    if *row {
        fmt.Println(board.RenderRow(cfg.Values(b), icons, *c.noColor))
        return
    }
    fmt.Print(board.RenderBoard(b, icons, *c.noColor))
}

func cmdHTML() {
    c := newCommonFlags("html")
    out := c.fs.String("out", "", "Write to PATH instead of stdout")
    _ = c.fs.Parse(os.Args[2:])
    log := c.logger()

    b := loadBoard(log, *c.board)
    page, err := board.RenderHTML(b, c.withIcons(b))
    if err != nil {
        fail(log, err)
    }
    if *out == "" {
        fmt.Print(page)
        return
    }
    if err := os.WriteFile(cfg.ExpandPath(*out), []byte(page), 0644); err != nil {
        fail(log, fmt.Errorf("write html: %w", err))
    }
    fmt.Println("Wrote", *out)
}

func cmdGallery() {
    c := newCommonFlags("gallery")
    _ = c.fs.Parse(os.Args[2:])
    log := c.logger()

    b := loadBoard(log, *c.board)
    b.WithIcons = c.withIcons(b)
    st, err := appTUI.Run(b, appTUI.Options{NoColor: *c.noColor, Log: log})
    if err != nil {
        fail(log, err)
    }
    if st.Dismissed > 0 {
        fmt.Printf("Dismissed %d chip(s); %d remaining.\n", st.Dismissed, len(st.Items))
    }
}

func cmdWatch() {
    c := newCommonFlags("watch")
    _ = c.fs.Parse(os.Args[2:])
    log := c.logger()

    // The board is optional here: chips can all come from the feed.
    b := &cfg.Board{Title: "Live status"}
    if _, err := os.Stat(cfg.ExpandPath(*c.board)); err == nil {
        b = loadBoard(log, *c.board)
    }
    b.WithIcons = c.withIcons(b)

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()
    feed := appTUI.ReadFeed(ctx, os.Stdin, log)
    if _, err := appTUI.Run(b, appTUI.Options{NoColor: *c.noColor, Feed: feed, Log: log}); err != nil {
        fail(log, err)
    }
}

func cmdSnapshot() {
    c := newCommonFlags("snapshot")
    out := c.fs.String("out", "", "Snapshot path (default: board path + .snap)")
    write := c.fs.Bool("write", false, "Store the current rendering instead of checking it")
    _ = c.fs.Parse(os.Args[2:])
    log := c.logger()

    b := loadBoard(log, *c.board)
    path := *out
    if path == "" {
        path = strings.TrimSuffix(*c.board, filepath.Ext(*c.board)) + snapExt
    }
    snap := appTUI.Snapshot(b, c.withIcons(b))
    if *write {
        if err := appTUI.WriteSnapshot(path, snap); err != nil {
            fail(log, err)
        }
        fmt.Println("Wrote", path)
        return
    }
    diff, ok, err := appTUI.CheckSnapshot(path, snap)
    if err != nil {
        fail(log, err)
    }
    if !ok {
        fmt.Print(diff)
        fmt.Println("Snapshot mismatch:", path)
        os.Exit(1)
    }
    fmt.Println("Snapshot matches:", path)
}
