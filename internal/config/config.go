// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package config

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var configFile = altsrc.StringSourcer("config.toml")

type Config struct { //nolint:govet // fieldalignment not critical for config structs
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Auth     AuthConfig
	SMTP     SMTPConfig
}

type ServerConfig struct { //nolint:govet // fieldalignment not critical for config structs
	Host        string
	Port        int
	MaxBodySize int // in MB
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

type DatabaseConfig struct {
	DSN string
}

// AuthConfig carries the shared secrets used by the token codec and the
// admin-gated endpoints. Built once at startup, read-only afterwards.
type AuthConfig struct { //nolint:govet // fieldalignment not critical
	AdminToken         string // static shared secret for the admin endpoints
	TokenSecret        string // HMAC secret for bearer tokens
	TokenTTL           int    // token lifetime in hours, 0 disables expiry
	AllowAdminBackdoor bool   // development-only admin/admin login bypass
}

type SMTPConfig struct { //nolint:govet // fieldalignment not critical
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string // recipient for contact notifications
	TLS      bool
}

func NewFromCLI(cmd *cli.Command) *Config {
	return &Config{
		Server: ServerConfig{
			Host:        cmd.String("host"),
			Port:        int(cmd.Int("port")),
			MaxBodySize: int(cmd.Int("max-body-size")),
		},
		Log: LogConfig{
			Level:  cmd.String("log-level"),
			Format: cmd.String("log-format"),
		},
		Database: DatabaseConfig{
			DSN: cmd.String("database-dsn"),
		},
		Auth: AuthConfig{
			AdminToken:         cmd.String("admin-token"),
			TokenSecret:        cmd.String("auth-secret"),
			TokenTTL:           int(cmd.Int("token-ttl")),
			AllowAdminBackdoor: cmd.Bool("allow-admin-backdoor"),
		},
		SMTP: SMTPConfig{
			Host:     cmd.String("smtp-host"),
			Port:     int(cmd.Int("smtp-port")),
			Username: cmd.String("smtp-username"),
			Password: cmd.String("smtp-password"),
			From:     cmd.String("smtp-from"),
			To:       cmd.String("smtp-to"),
			TLS:      cmd.Bool("smtp-tls"),
		},
	}
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Value:   "localhost",
			Usage:   "Host to bind to",
			Sources: cli.NewValueSourceChain(cli.EnvVar("HOST"), toml.TOML("server.host", configFile)),
		},
		&cli.IntFlag{
			Name:    "port",
			Value:   3001,
			Usage:   "Port to listen on",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PORT"), toml.TOML("server.port", configFile)),
		},
		&cli.IntFlag{
			Name:    "max-body-size",
			Value:   1,
			Usage:   "Maximum request body size in MB",
			Sources: cli.NewValueSourceChain(cli.EnvVar("MAX_BODY_SIZE"), toml.TOML("server.max_body_size", configFile)),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("LOG_LEVEL"), toml.TOML("log.level", configFile)),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "text",
			Usage:   "Log format (text, json)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("LOG_FORMAT"), toml.TOML("log.format", configFile)),
		},
		&cli.StringFlag{
			Name:    "database-dsn",
			Value:   "./data/portfolio.db",
			Usage:   "SQLite database path",
			Sources: cli.NewValueSourceChain(cli.EnvVar("DATABASE_DSN"), toml.TOML("database.dsn", configFile)),
		},
		&cli.StringFlag{
			Name:    "admin-token",
			Value:   "dev-admin-token",
			Usage:   "Shared secret for the admin endpoints",
			Sources: cli.NewValueSourceChain(cli.EnvVar("ADMIN_TOKEN"), toml.TOML("auth.admin_token", configFile)),
		},
		&cli.StringFlag{
			Name:    "auth-secret",
			Value:   "dev-auth-secret-change-me",
			Usage:   "HMAC secret for signing bearer tokens",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AUTH_SECRET"), toml.TOML("auth.secret", configFile)),
		},
		&cli.IntFlag{
			Name:    "token-ttl",
			Value:   0,
			Usage:   "Bearer token lifetime in hours, 0 means no expiry",
			Sources: cli.NewValueSourceChain(cli.EnvVar("TOKEN_TTL"), toml.TOML("auth.token_ttl", configFile)),
		},
		&cli.BoolFlag{
			Name:    "allow-admin-backdoor",
			Usage:   "Enable the admin/admin login bypass (development only)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("ALLOW_ADMIN_BACKDOOR"), toml.TOML("auth.allow_admin_backdoor", configFile)),
		},
		&cli.StringFlag{
			Name:    "smtp-host",
			Usage:   "SMTP host for contact notifications (empty disables them)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("SMTP_HOST"), toml.TOML("smtp.host", configFile)),
		},
		&cli.IntFlag{
			Name:    "smtp-port",
			Value:   587,
			Usage:   "SMTP port",
			Sources: cli.NewValueSourceChain(cli.EnvVar("SMTP_PORT"), toml.TOML("smtp.port", configFile)),
		},
		&cli.StringFlag{
			Name:    "smtp-username",
			Usage:   "SMTP username",
			Sources: cli.NewValueSourceChain(cli.EnvVar("SMTP_USERNAME"), toml.TOML("smtp.username", configFile)),
		},
		&cli.StringFlag{
			Name:    "smtp-password",
			Usage:   "SMTP password",
			Sources: cli.NewValueSourceChain(cli.EnvVar("SMTP_PASSWORD"), toml.TOML("smtp.password", configFile)),
		},
		&cli.StringFlag{
			Name:    "smtp-from",
			Usage:   "Sender address for contact notifications",
			Sources: cli.NewValueSourceChain(cli.EnvVar("SMTP_FROM"), toml.TOML("smtp.from", configFile)),
		},
		&cli.StringFlag{
			Name:    "smtp-to",
			Usage:   "Recipient address for contact notifications",
			Sources: cli.NewValueSourceChain(cli.EnvVar("SMTP_TO"), toml.TOML("smtp.to", configFile)),
		},
		&cli.BoolFlag{
			Name:    "smtp-tls",
			Value:   true,
			Usage:   "Use TLS for SMTP",
			Sources: cli.NewValueSourceChain(cli.EnvVar("SMTP_TLS"), toml.TOML("smtp.tls", configFile)),
		},
	}
}
