package config

import (
	"fmt"
	"strconv"
	"time"
)

const envPrefix = "SHIFTNOTES_"

func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}

	str("API_URL", &cfg.APIBaseURL)
	str("DB_PATH", &cfg.DBPath)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("TOKEN_PASSPHRASE", &cfg.TokenPassphrase)
	str("EXPORT_DIR", &cfg.ExportDir)
	str("S3_ENDPOINT", &cfg.S3.Endpoint)
	str("S3_REGION", &cfg.S3.Region)
	str("S3_BUCKET", &cfg.S3.Bucket)
	str("S3_ACCESS_KEY", &cfg.S3.AccessKey)
	str("S3_SECRET_KEY", &cfg.S3.SecretKey)
	str("S3_PREFIX", &cfg.S3.Prefix)

	if v, ok := lookup(envPrefix + "DEBOUNCE_WINDOW"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sDEBOUNCE_WINDOW: %w", envPrefix, err)
		}
		cfg.DebounceWindow = d
	}
	if v, ok := lookup(envPrefix + "PAGE_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%sPAGE_SIZE: invalid value %q", envPrefix, v)
		}
		cfg.PageSize = n
	}
	return nil
}
