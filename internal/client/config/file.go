package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shiftnotes/shiftnotes-cli/internal/flagx"
	"github.com/shiftnotes/shiftnotes-cli/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape. Zero values leave the current setting
// alone, so a file may set only what it needs.
type FileConfig struct {
	APIBaseURL      string         `json:"api_base_url" yaml:"api_base_url"`
	DBPath          string         `json:"db_path" yaml:"db_path"`
	LogLevel        string         `json:"log_level" yaml:"log_level"`
	DebounceWindow  timex.Duration `json:"debounce_window" yaml:"debounce_window"`
	PageSize        int            `json:"page_size" yaml:"page_size"`
	TokenPassphrase string         `json:"token_passphrase" yaml:"token_passphrase"`
	ExportDir       string         `json:"export_dir" yaml:"export_dir"`
	S3              struct {
		Endpoint  string `json:"endpoint" yaml:"endpoint"`
		Region    string `json:"region" yaml:"region"`
		Bucket    string `json:"bucket" yaml:"bucket"`
		AccessKey string `json:"access_key" yaml:"access_key"`
		SecretKey string `json:"secret_key" yaml:"secret_key"`
		Prefix    string `json:"prefix" yaml:"prefix"`
	} `json:"s3" yaml:"s3"`
}

func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.DBPath, fc.DBPath)
	setString(&cfg.LogLevel, fc.LogLevel)
	if fc.DebounceWindow.Duration > 0 {
		cfg.DebounceWindow = fc.DebounceWindow.Duration
	}
	if fc.PageSize > 0 {
		cfg.PageSize = fc.PageSize
	}
	setString(&cfg.TokenPassphrase, fc.TokenPassphrase)
	setString(&cfg.ExportDir, fc.ExportDir)
	setString(&cfg.S3.Endpoint, fc.S3.Endpoint)
	setString(&cfg.S3.Region, fc.S3.Region)
	setString(&cfg.S3.Bucket, fc.S3.Bucket)
	setString(&cfg.S3.AccessKey, fc.S3.AccessKey)
	setString(&cfg.S3.SecretKey, fc.S3.SecretKey)
	setString(&cfg.S3.Prefix, fc.S3.Prefix)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
