// Package config loads runtime configuration for the shiftnotes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment variables, after loading a .env file from the working
//     directory if one exists. Variables already set win over .env.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the REST API, e.g. https://api.example.org/api
//	-d string   path of the local SQLite database
//	-l string   log level: debug, info, warn, error
//
// Environment
//
//	SHIFTNOTES_API_URL, SHIFTNOTES_DB_PATH, SHIFTNOTES_LOG_LEVEL,
//	SHIFTNOTES_DEBOUNCE_WINDOW, SHIFTNOTES_PAGE_SIZE,
//	SHIFTNOTES_TOKEN_PASSPHRASE, SHIFTNOTES_EXPORT_DIR,
//	SHIFTNOTES_S3_ENDPOINT, SHIFTNOTES_S3_REGION, SHIFTNOTES_S3_BUCKET,
//	SHIFTNOTES_S3_ACCESS_KEY, SHIFTNOTES_S3_SECRET_KEY, SHIFTNOTES_S3_PREFIX
//
// # File schema
//
//	api_base_url: https://api.example.org/api
//	db_path: shiftnotes.db
//	log_level: info
//	debounce_window: 300ms
//	page_size: 20
//	export_dir: exports
//	s3:
//	  bucket: exports
//	  region: us-east-1
package config
