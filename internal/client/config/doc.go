// Package config loads runtime configuration for the insulA terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables, after an optional .env file (see LoadDotenv).
//  4. Command-line flags, which override everything else.
//
// Flags
//
//	-u string   base URL of the identity/profile API
//	-d string   path of the local SQLite database
//	-t int      request timeout in seconds
//
// Environment
//
//	INSULA_API_URL, INSULA_DB_PATH, INSULA_REQUEST_TIMEOUT, INSULA_LOG_LEVEL
//
// # JSON schema
//
// Durations use timex.Duration, so "10s" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "http://127.0.0.1:3000/api",
//	  "database_path": "insula.db",
//	  "storage_key": "insula.session",
//	  "request_timeout": "10s",
//	  "seal_session": true,
//	  "key_file": "insula.key",
//	  "log_level": "debug"
//	}
package config
