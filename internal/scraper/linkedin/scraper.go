package linkedin

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"go-jobharvest-automation/internal/config"
	"go-jobharvest-automation/internal/normalize"
	"go-jobharvest-automation/internal/scraper"

	"github.com/PuerkitoBio/goquery"
	"github.com/playwright-community/playwright-go"
)

// Structural selectors for the public (unauthenticated) job search. External
// contract: the site can change this markup without notice.
const (
	resultListSelector  = "ul.jobs-search__results-list"
	cardLinkSelector    = "ul.jobs-search__results-list li a.base-card__full-link"
	titleSelector       = "h1.top-card-layout__title"
	companySelector     = "a.topcard__org-name-link"
	locationSelector    = "span.topcard__flavor--bullet"
	descriptionSelector = "div.show-more-less-html__markup"
)

type LinkedInScraper struct {
	cfg *config.Config
}

func NewLinkedInScraper(cfg *config.Config) *LinkedInScraper {
	return &LinkedInScraper{cfg: cfg}
}

func (s *LinkedInScraper) Name() string {
	return "LinkedIn"
}

func (s *LinkedInScraper) searchURL() string {
	q := url.Values{}
	q.Set("keywords", s.cfg.Keyword)
	if s.cfg.Location != "" {
		q.Set("location", s.cfg.Location)
	}
	return "https://www.linkedin.com/jobs/search?" + q.Encode()
}

// CollectLinks loads the search results for the configured keyword and
// returns every listing-card link in document order.
func (s *LinkedInScraper) CollectLinks(ctx context.Context, page playwright.Page) ([]string, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	log.Printf("🔍 Searching: %q", s.cfg.Keyword)

	if _, err := page.Goto(s.searchURL(), playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(s.cfg.NavTimeoutMs)),
	}); err != nil {
		return nil, fmt.Errorf("failed to load search results: %w", err)
	}

	//The result list renders asynchronously. A timeout here is not fatal:
	//zero listings is a legitimate outcome, so fall through and parse
	//whatever rendered.
	page.WaitForSelector(resultListSelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(s.cfg.WaitTimeoutMs)),
	})

	html, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read search results page: %w", err)
	}

	links, err := parseJobLinks(html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	log.Printf("📦 Found %d job links", len(links))
	return links, nil
}

// parseJobLinks pulls the listing-card anchors out of rendered search-results
// markup. Document order, duplicates kept.
func parseJobLinks(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	links := []string{}
	doc.Find(cardLinkSelector).Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok {
			links = append(links, strings.TrimSpace(href))
		}
	})
	return links, nil
}

// ExtractJob navigates the shared page to one detail URL and reads the four
// required fields. A page whose content never settles yields
// scraper.ErrContentTimeout; a settled page missing a field yields
// scraper.ErrFieldMissing. Either aborts the whole run upstream.
func (s *LinkedInScraper) ExtractJob(ctx context.Context, page playwright.Page, jobURL string) (*scraper.Job, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if _, err := page.Goto(jobURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(s.cfg.NavTimeoutMs)),
	}); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", jobURL, err)
	}

	//Bounded readiness wait on the title instead of a fixed sleep.
	if _, err := page.WaitForSelector(titleSelector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(s.cfg.WaitTimeoutMs)),
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", jobURL, scraper.ErrContentTimeout)
	}

	html, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", jobURL, err)
	}

	job, err := parseJobDetail(html, jobURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", jobURL, err)
	}
	return job, nil
}

// parseJobDetail reads the four fields from rendered detail-page markup.
func parseJobDetail(html, jobURL string) (*scraper.Job, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	title, err := firstText(doc, titleSelector, "title")
	if err != nil {
		return nil, err
	}
	company, err := firstText(doc, companySelector, "company")
	if err != nil {
		return nil, err
	}
	location, err := firstText(doc, locationSelector, "location")
	if err != nil {
		return nil, err
	}
	description, err := firstText(doc, descriptionSelector, "description")
	if err != nil {
		return nil, err
	}

	return &scraper.Job{
		Title:       title,
		Company:     company,
		Location:    location,
		Description: normalize.Description(description),
		URL:         jobURL,
		Source:      "LinkedIn",
	}, nil
}

func firstText(doc *goquery.Document, selector, field string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("%s (%s): %w", field, selector, scraper.ErrFieldMissing)
	}
	return strings.TrimSpace(sel.Text()), nil
}
