package ebiten

import (
	"fmt"

	"github.com/pkg/browser"
)

// BrowserNavigator opens detail pages in the system browser.
type BrowserNavigator struct{}

func (BrowserNavigator) Navigate(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
