// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//Search criteria (fixed per run, the binary takes no flags)
	Keyword  string `yaml:"keyword"`
	Location string `yaml:"location"`
	MaxJobs  int    `yaml:"max_jobs"`

	//Output
	OutputPath string `yaml:"output_path"`

	//Browser behavior
	Headless      bool `yaml:"headless"`
	NavTimeoutMs  int  `yaml:"nav_timeout_ms"`
	WaitTimeoutMs int  `yaml:"wait_timeout_ms"`
	RunTimeoutMin int  `yaml:"run_timeout_min"`
	PacingMinMs   int  `yaml:"pacing_min_ms"`
	PacingMaxMs   int  `yaml:"pacing_max_ms"`

	//Optional notifications
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load() *Config {
	return load("configs/config.yaml")
}

func load(path string) *Config {
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Validate required fields
	if cfg.Keyword == "" {
		log.Fatal("keyword is required")
	}

	if cfg.OutputPath == "" {
		log.Fatal("output_path is required")
	}

	if cfg.PacingMaxMs < cfg.PacingMinMs {
		cfg.PacingMaxMs = cfg.PacingMinMs
	}

	return cfg
}

func defaults() *Config {
	return &Config{
		Keyword:       "golang developer",
		OutputPath:    "jobs.csv",
		Headless:      true,
		NavTimeoutMs:  30000,
		WaitTimeoutMs: 10000,
		RunTimeoutMin: 10,
		PacingMinMs:   500,
		PacingMaxMs:   1500,
		MaxJobs:       25,
	}
}
