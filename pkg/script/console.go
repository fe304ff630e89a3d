package script

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dop251/goja"
)

// consoleAPI implements console.log, console.warn and console.error on
// top of slog.
type consoleAPI struct {
	logger *slog.Logger
}

func (c *consoleAPI) register(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", c.emit(slog.LevelInfo))
	console.Set("warn", c.emit(slog.LevelWarn))
	console.Set("error", c.emit(slog.LevelError))
	vm.Set("console", console)
}

func (c *consoleAPI) emit(level slog.Level) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		c.logger.Log(context.Background(), level, formatArgs(call.Arguments), "source", "script")
		return goja.Undefined()
	}
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
