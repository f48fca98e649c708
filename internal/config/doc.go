// Package config manages application configuration for the ClubHub API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: JWT signing and validation settings
//   - ReminderConfig: Daily event reminder scan settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production, or test
//	DB_HOST              - SurrealDB host
//	DB_PORT              - SurrealDB port
//	DB_NAMESPACE         - Database namespace
//	DB_DATABASE          - Database name
//	JWT_PRIVATE_KEY_PATH - RSA private key for token signing
//	JWT_PUBLIC_KEY_PATH  - RSA public key for token validation
//	JWT_EXPIRATION_MINS  - Access token lifetime in minutes
//	REMINDER_ENABLED     - Enable the daily reminder scan
//	REMINDER_INTERVAL    - Scan interval (default: 24h)
//
// # Default Values
//
// Every variable has a development default, so a bare `config.Load()` yields
// a configuration that validates. Unparseable numeric, duration, or boolean
// values fall back to their defaults rather than failing the load.
package config
