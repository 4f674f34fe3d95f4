// Command mustuse reports Result values discarded without being handled.
package main

import (
	"log/slog"
	"os"

	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/mustuse"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(os.Getenv("MUSTUSE_LOG_LEVEL")),
	})))

	singlechecker.Main(mustuse.Analyzer)
}

// logLevel parses slog level names, warnings are logged by default.
func logLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelWarn
	}

	return level
}
