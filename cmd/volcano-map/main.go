// cmd/volcano-map/main.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/waozixyz/volcanomap/internal/app"
	"github.com/waozixyz/volcanomap/render/raylib"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "volcano-map: .env: %v\n", err)
		os.Exit(1)
	}

	err := app.Execute(func(logger *slog.Logger) app.Backend {
		return app.RendererBackend(raylib.NewRaylibRenderer(logger))
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "volcano-map: %v\n", err)
		os.Exit(1)
	}
}
