package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go-jobharvest-automation/internal/browser"
	"go-jobharvest-automation/internal/config"
	"go-jobharvest-automation/internal/export"
	"go-jobharvest-automation/internal/progress"
	"go-jobharvest-automation/internal/scraper"
	"go-jobharvest-automation/internal/scraper/linkedin"
	"go-jobharvest-automation/internal/telegram"
	"go-jobharvest-automation/utils"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Keyword: %q", cfg.Keyword)

	//init telegram bot (optional)
	var bot *telegram.Bot
	if cfg.TelegramToken != "" {
		var err error
		bot, err = telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram Bot: %v", err)
		}
		log.Println("🤖 Telegram Bot initialized.")
	}

	log.Println("🚀 Starting JobHarvest Automation...")

	//scrape owns the browser; any failure there aborts without exporting
	jobs, err := scrape(cfg)
	if err != nil {
		if bot != nil {
			if sendErr := bot.SendError(err); sendErr != nil {
				log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
			}
		}
		log.Fatalf("❌ Scrape failed: %v", err)
	}

	log.Printf("📦 Total jobs collected: %d", len(jobs))

	//save results. A write failure is reported, not a crash.
	if err := export.WriteFile(cfg.OutputPath, jobs); err != nil {
		log.Printf("⚠️ Failed to save results: %v", err)
	} else {
		log.Printf("📁 Results saved to %s", cfg.OutputPath)
		if bot != nil {
			if err := bot.SendSummary(len(jobs), cfg.OutputPath); err != nil {
				log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
			}
		}
	}

	log.Println("🏁 Execution finished.")
}

// scrape runs the collect/extract pipeline and returns the ordered records.
// Browser and spinner are released via defer, so they are shut down even when
// an extraction aborts the run partway.
func scrape(cfg *config.Config) ([]scraper.Job, error) {
	//overall deadline for the whole run
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RunTimeoutMin)*time.Minute)
	defer cancel()

	//init playwright manager
	pm, err := browser.NewPlaywright(cfg.Headless)
	if err != nil {
		return nil, fmt.Errorf("failed to init Playwright: %w", err)
	}
	defer pm.Close()

	//one context, one page, reused serially for every navigation
	browserCtx, err := pm.NewContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create new page: %w", err)
	}
	log.Println("✅ Browser initialized successfully!")

	spin := progress.New(os.Stdout, 150*time.Millisecond)
	spin.Start()
	defer spin.Stop()

	var s scraper.Scraper = linkedin.NewLinkedInScraper(cfg)
	log.Printf("▶️ Starting scraper: %s", s.Name())

	links, err := s.CollectLinks(ctx, page)
	if err != nil {
		return nil, err
	}

	if cfg.MaxJobs > 0 && len(links) > cfg.MaxJobs {
		log.Printf("✂️ Limiting to first %d of %d links", cfg.MaxJobs, len(links))
		links = links[:cfg.MaxJobs]
	}

	jobs := make([]scraper.Job, 0, len(links))
	for i, link := range links {
		job, err := s.ExtractJob(ctx, page, link)
		if err != nil {
			//all-or-nothing: one bad page aborts the batch
			return nil, err
		}
		jobs = append(jobs, *job)
		log.Printf("  ✅ [%d/%d] %s - %s", i+1, len(links), job.Title, job.Company)
		utils.RandomDelay(cfg.PacingMinMs, cfg.PacingMaxMs)
	}

	return jobs, nil
}
