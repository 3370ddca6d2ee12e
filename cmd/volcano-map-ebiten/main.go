// cmd/volcano-map-ebiten/main.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/waozixyz/volcanomap/internal/app"
	"github.com/waozixyz/volcanomap/render/ebiten"
)

// Separate binary from cmd/volcano-map: raylib and ebiten each link their own GLFW.
func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "volcano-map-ebiten: .env: %v\n", err)
		os.Exit(1)
	}

	err := app.Execute(func(*slog.Logger) app.Backend {
		return app.Backend{
			Textures:  ebiten.TextureLoader{},
			Navigator: ebiten.BrowserNavigator{},
			Run:       ebiten.Run,
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "volcano-map-ebiten: %v\n", err)
		os.Exit(1)
	}
}
