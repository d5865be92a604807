package main

import (
	"log/slog"
	"os"

	"github.com/franchescafernanda/Soft-Jobs/internal/app"
)

func main() {
	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		slog.Error("application exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
