// Define the record and the contract for site scrapers
// Ensure consistency

package scraper

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

// Job is one extracted listing. Title, Company, Location and Description are
// the exported columns; URL and Source ride along for logging and
// notifications. Immutable once built.
type Job struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	Source      string
}

//Scraper defines the interface that all platform scrapers must implement
type Scraper interface {
	//CollectLinks returns the detail-page URLs found on the search results,
	//in document order, duplicates kept. Empty is a valid result.
	CollectLinks(ctx context.Context, page playwright.Page) ([]string, error)

	//ExtractJob navigates the shared page to one detail URL and pulls the
	//record out of the rendered markup.
	ExtractJob(ctx context.Context, page playwright.Page, url string) (*Job, error)

	//Name is the platform name (LinkedIn, ...)
	Name() string
}
