package board

import (
    "strings"
    "testing"

    "statuschip/internal/config"
    "statuschip/internal/tui/state"
)

func testBoard() *config.Board {
    return &config.Board{
        Title:       "ops",
        Dismissible: true,
        DeleteIcon:  "×",
        Statuses: []config.Entry{
            {Status: "success", Message: "api"},
            {Status: "warning", Message: "queue", Content: "q.svg"},
            {Status: "", Message: "<unknown>"},
        },
    }
}

func TestRenderBoardPlain(t *testing.T) {
    out := RenderBoard(testBoard(), true, true)
    wants := []string{"ops\n", "(✔ api [×])\n", "([img q.svg] queue [×])\n", "(ℹ <unknown> [×])\n"}
    for _, w := range wants {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in output: %s", w, out)
        }
    }
}

func TestRenderBoardNotDismissible(t *testing.T) {
    b := testBoard()
    b.Dismissible = false
    out := RenderBoard(b, false, true)
    if strings.Contains(out, "[×]") {
        t.Fatalf("non-dismissible board rendered a dismiss glyph: %s", out)
    }
    if !strings.Contains(out, "(S api)") {
        t.Fatalf("expected initials chip: %s", out)
    }
}

func TestRenderRow(t *testing.T) {
    out := RenderRow([]state.StatusValue{{Status: "e", Message: "x"}, {Status: "w", Message: "y"}}, true, true)
    if out != "(✖ x) (⚠ y)" {
        t.Fatalf("unexpected row: %q", out)
    }
}

func TestRenderHTMLPage(t *testing.T) {
    out, err := RenderHTML(testBoard(), false)
    if err != nil {
        t.Fatalf("render html: %v", err)
    }
    for _, w := range []string{"<title>ops</title>", `<img src="q.svg"`, "&lt;unknown&gt;", "status-chip-delete"} {
        if !strings.Contains(out, w) {
            t.Fatalf("expected %q in html", w)
        }
    }
    if strings.Count(out, `class="status-chip`) < 3 {
        t.Fatalf("expected three chips in html")
    }
}

func TestRenderBoardHonorsNoColorEnv(t *testing.T) {
    t.Setenv("NO_COLOR", "1")
    out := RenderBoard(testBoard(), true, false)
    if !strings.Contains(out, "(✔ api [×])\n") {
        t.Fatalf("expected plain chip under NO_COLOR: %s", out)
    }
    if strings.Contains(out, "╭") {
        t.Fatalf("NO_COLOR output drew a border: %s", out)
    }
}
