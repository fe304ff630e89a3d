// Package script drives a grid host from JavaScript scenario files, so
// pointer interactions can be replayed headless.
//
// Scripts see these globals:
//
//	move(x, y)      pointer moved to (x, y), surface coordinates
//	leave()         pointer left the surface
//	leaveWindow()   pointer left the window
//	click()         click at the current pointer position
//	resize(w, h)    viewport resized
//	offsets()       {vertical, horizontal} scroll offsets
//	console.log / console.warn / console.error
package script

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dop251/goja"

	"gridcanvas/pkg/logging"
)

// Target receives the events a script produces.
type Target interface {
	PointerMove(x, y float64)
	PointerLeave()
	WindowLeave()
	Click()
	Resize(width, height int)
	Offsets() (x, y int)
}

// Engine runs scenario scripts against a Target.
type Engine struct {
	vm     *goja.Runtime
	target Target
	logger *slog.Logger
}

// New creates an engine with a fresh goja runtime bound to target. A nil
// logger drops console output.
func New(target Target, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.Discard()
	}
	e := &Engine{vm: goja.New(), target: target, logger: logger}

	c := &consoleAPI{logger: logger}
	c.register(e.vm)
	e.registerEvents()

	return e
}

func (e *Engine) registerEvents() {
	e.vm.Set("move", func(x, y float64) {
		e.logger.Debug("script move", "x", x, "y", y)
		e.target.PointerMove(x, y)
	})
	e.vm.Set("leave", func() {
		e.logger.Debug("script leave")
		e.target.PointerLeave()
	})
	e.vm.Set("leaveWindow", func() {
		e.logger.Debug("script leave window")
		e.target.WindowLeave()
	})
	e.vm.Set("click", func() {
		e.logger.Debug("script click")
		e.target.Click()
	})
	e.vm.Set("resize", func(w, h int) {
		if w <= 0 || h <= 0 {
			panic(e.vm.NewTypeError("resize: size must be positive, got %dx%d", w, h))
		}
		e.target.Resize(w, h)
	})
	e.vm.Set("offsets", func() map[string]int {
		x, y := e.target.Offsets()
		return map[string]int{"vertical": y, "horizontal": x}
	})
}

// Run executes src. name only labels errors.
func (e *Engine) Run(name, src string) error {
	if _, err := e.vm.RunScript(name, src); err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	return nil
}

// RunFile executes the script at path.
func (e *Engine) RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return e.Run(path, string(src))
}
