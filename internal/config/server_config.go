package config

import (
	"fmt"

	"github.com/kashguard/go-docsig/internal/util"
	"github.com/rs/zerolog"
)

// EchoServer holds the HTTP listener configuration.
type EchoServer struct {
	ListenAddress                  string
	HideInternalServerErrorDetails bool
}

// Database holds the PostgreSQL connection configuration for the audit store.
type Database struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
	SSLMode  string
}

// ConnectionString returns a keyword/value PostgreSQL connection string.
func (d Database) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password, d.Database, d.SSLMode)
}

// Docsig holds the document inspection service configuration.
type Docsig struct {
	// EnableAuditStore toggles audit log persistence to PostgreSQL.
	// Disabled, audit events are discarded via the noop store.
	EnableAuditStore bool
	// AuditLogsDefaultLimit caps audit log queries without an explicit limit.
	AuditLogsDefaultLimit int
}

// Logger holds the zerolog configuration.
type Logger struct {
	Level              zerolog.Level
	PrettyPrintConsole bool
}

// Server is the aggregated service configuration.
type Server struct {
	Echo     EchoServer
	Database Database
	Docsig   Docsig
	Logger   Logger
}

// DefaultServiceConfigFromEnv returns the server config populated from the
// environment with sane development defaults.
func DefaultServiceConfigFromEnv() Server {
	return Server{
		Echo: EchoServer{
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
		},
		Database: Database{
			Host:     util.GetEnv("PGHOST", "localhost"),
			Port:     util.GetEnvAsInt("PGPORT", 5432),
			Username: util.GetEnv("PGUSER", "docsig"),
			Password: util.GetEnv("PGPASSWORD", ""),
			Database: util.GetEnv("PGDATABASE", "docsig"),
			SSLMode:  util.GetEnv("PGSSLMODE", "disable"),
		},
		Docsig: Docsig{
			EnableAuditStore:      util.GetEnvAsBool("DOCSIG_ENABLE_AUDIT_STORE", false),
			AuditLogsDefaultLimit: util.GetEnvAsInt("DOCSIG_AUDIT_LOGS_DEFAULT_LIMIT", 100),
		},
		Logger: Logger{
			Level:              parseLogLevel(util.GetEnv("SERVER_LOGGER_LEVEL", "info")),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
	}
}

func parseLogLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}

	return parsed
}
