// Own the Playwright runtime and the browser process lifecycle.
// One manager per run, closed exactly once.

package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// NewPlaywright starts the driver and launches a Chromium instance. A launch
// failure leaves nothing behind to clean up.
func NewPlaywright(headless bool) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	chromium, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium: %w", err)
	}

	return &PlaywrightManager{pw: pw, browser: chromium}, nil
}

// NewContext creates a fresh browser context; the caller opens the single
// page all navigation runs through.
func (pm *PlaywrightManager) NewContext() (playwright.BrowserContext, error) {
	return pm.browser.NewContext()
}

// Close terminates the browser process and stops the driver.
func (pm *PlaywrightManager) Close() error {
	if err := pm.browser.Close(); err != nil {
		pm.pw.Stop()
		return err
	}
	return pm.pw.Stop()
}
