package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shiftnotes/shiftnotes-cli/internal/common"
)

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Prefix    string
}

// Enabled reports whether exports should go to S3 instead of ExportDir.
func (s S3Config) Enabled() bool { return s.Bucket != "" }

// Config holds runtime settings for the CLI.
type Config struct {
	APIBaseURL     string
	DBPath         string
	LogLevel       string
	DebounceWindow time.Duration
	PageSize       int
	// TokenPassphrase seals the persisted session token. Empty still
	// encrypts, but only against casual reads of the database file.
	TokenPassphrase string
	ExportDir       string
	S3              S3Config
}

func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.DBPath = "shiftnotes.db"
	c.LogLevel = "info"
	c.DebounceWindow = 300 * time.Millisecond
	c.PageSize = common.DefaultPageSize
	c.ExportDir = "exports"
	c.S3.Region = "us-east-1"
}

// LoadConfig applies defaults, the config file, the environment and flags,
// in that order.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

func load(args []string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
