package script

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gridcanvas/pkg/grid"
)

type recorder struct {
	events []string
	x, y   int
}

func (r *recorder) PointerMove(x, y float64) { r.events = append(r.events, "move") }
func (r *recorder) PointerLeave()            { r.events = append(r.events, "leave") }
func (r *recorder) WindowLeave()             { r.events = append(r.events, "leaveWindow") }
func (r *recorder) Click()                   { r.events = append(r.events, "click") }
func (r *recorder) Resize(w, h int)          { r.events = append(r.events, "resize") }
func (r *recorder) Offsets() (x, y int)      { return r.x, r.y }

func newHost(t *testing.T) *grid.Host {
	t.Helper()
	// 500x900 content in a 500x500 viewport.
	return grid.NewHost(grid.New(5, 35, 94, 25), 500, 500, nil)
}

func TestEventsReachTarget(t *testing.T) {
	r := &recorder{}
	e := New(r, nil)
	err := e.Run("events", `
		move(1, 2);
		click();
		leave();
		leaveWindow();
		resize(10, 20);
	`)
	if err != nil {
		t.Fatal(err)
	}
	got := strings.Join(r.events, ",")
	if got != "move,click,leave,leaveWindow,resize" {
		t.Errorf("unexpected events: %s", got)
	}
}

func TestOffsetsObject(t *testing.T) {
	r := &recorder{x: 7, y: 9}
	e := New(r, nil)
	err := e.Run("offsets", `
		var o = offsets();
		if (o.vertical !== 9) throw new Error("vertical: " + o.vertical);
		if (o.horizontal !== 7) throw new Error("horizontal: " + o.horizontal);
	`)
	if err != nil {
		t.Fatal(err)
	}
}

func TestScenarioAgainstHost(t *testing.T) {
	h := newHost(t)
	e := New(h, nil)
	err := e.Run("scenario", `
		move(495, 5);
		click();
		if (offsets().vertical !== 0) throw new Error("begin click should clamp at 0");
		move(495, 495);
		click();
		if (offsets().vertical !== 3) throw new Error("end click should step by 3, got " + offsets().vertical);
		for (var i = 0; i < 1000; i++) click();
		if (offsets().vertical !== 400) throw new Error("end clicks should stop at 400, got " + offsets().vertical);
		leave();
		click();
		if (offsets().vertical !== 400) throw new Error("click after leave should not scroll");
	`)
	if err != nil {
		t.Fatal(err)
	}
	if _, y := h.Offsets(); y != 400 {
		t.Errorf("expected host offset 400, got %d", y)
	}
}

func TestResizeRejectsBadSize(t *testing.T) {
	e := New(&recorder{}, nil)
	err := e.Run("resize", `resize(0, 10);`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "script resize") {
		t.Errorf("error should name the script: %v", err)
	}
}

func TestScriptErrorIsWrapped(t *testing.T) {
	e := New(&recorder{}, nil)
	err := e.Run("broken.js", `throw new Error("boom");`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "broken.js") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConsoleGoesToLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := New(&recorder{}, logger)
	if err := e.Run("console", `console.log("hello", 42); console.warn("careful");`); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `msg="hello 42"`) {
		t.Errorf("missing log line: %s", out)
	}
	if !strings.Contains(out, "level=WARN msg=careful") {
		t.Errorf("missing warn line: %s", out)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scroll.js")
	if err := os.WriteFile(path, []byte("move(495, 495); click(); click();"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := newHost(t)
	if err := New(h, nil).RunFile(path); err != nil {
		t.Fatal(err)
	}
	if _, y := h.Offsets(); y != 6 {
		t.Errorf("expected offset 6, got %d", y)
	}

	if err := New(h, nil).RunFile(path + ".missing"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNilLoggerDropsConsole(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	if err := New(&recorder{}, nil).Run("quiet", `console.error("should not appear");`); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("console output reached the default logger: %s", buf.String())
	}
}
