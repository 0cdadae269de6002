// Package config loads the application configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/serrors"
	"meetbuddy/pkg/zones"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Slot and fairness source kinds.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceStatic   = "static"
	SourceFile     = "file"
)

// Party describes one side of the meeting.
type Party struct {
	// Name is shown in reasons and output, e.g. "India".
	Name string `yaml:"name"`
	// Timezone is the IANA zone whose wall clock is used for scoring.
	Timezone string `yaml:"timezone"`
	// SlotsFile is the CSV file with the party's availability (csv source only).
	SlotsFile string `yaml:"slotsFile"`
}

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Parties are the two sides of the meeting.
	Parties struct {
		A Party `env-prefix:"PARTY_A_" yaml:"a"`
		B Party `env-prefix:"PARTY_B_" yaml:"b"`
	} `yaml:"parties"`

	// Sources selects where availability and fairness counters come from.
	Sources struct {
		// Slots is either "csv" or "postgres".
		Slots string `env:"SOURCES_SLOTS" env-default:"csv" yaml:"slots"`
		// Fairness is one of "static", "file" or "postgres".
		Fairness string `env:"SOURCES_FAIRNESS" env-default:"static" yaml:"fairness"`
	} `yaml:"sources"`

	// Fairness configures the static and file fairness sources.
	Fairness struct {
		// PartyA is the static burden of party A.
		PartyA int `env:"FAIRNESS_PARTY_A" env-default:"12" yaml:"partyA"`
		// PartyB is the static burden of party B.
		PartyB int `env:"FAIRNESS_PARTY_B" env-default:"19" yaml:"partyB"`
		// File is the YAML document read by the file source.
		File string `env:"FAIRNESS_FILE" env-default:"fairness.yml" yaml:"file"`
	} `yaml:"fairness"`

	// Ranking tunes the ranking pipeline.
	Ranking struct {
		// SkipMalformed skips unparseable rows instead of failing the whole run.
		SkipMalformed bool `env:"RANKING_SKIP_MALFORMED" env-default:"false" yaml:"skipMalformed"`
	} `yaml:"ranking"`

	// Invite configures calendar export.
	Invite struct {
		// Title is the event summary.
		Title string `env:"INVITE_TITLE" env-default:"Vendor–Distributor Meeting" yaml:"title"`
	} `yaml:"invite"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits the size of POST request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the CORS origins; empty allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"meetbuddy" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// ConnectAttempts is how many times connecting is tried at startup
		ConnectAttempts uint `env:"DATABASE_CONNECT_ATTEMPTS" env-default:"5" yaml:"connectAttempts"`
		// ConnectDelay is the base delay between connection attempts
		ConnectDelay time.Duration `env:"DATABASE_CONNECT_DELAY" env-default:"1s" yaml:"connectDelay"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair. API authentication is enabled when PublicKey is set.
	JWT struct {
		// PublicKey is the PEM encoded key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded key used by the jwt command to issue tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled and
// validated Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields that cleanenv cannot: enumerations, party zones
// and non-negative fairness values.
func (c *Config) Validate() error {
	switch c.Sources.Slots {
	case SourceCSV, SourcePostgres:
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown slot source %q", c.Sources.Slots)
	}

	switch c.Sources.Fairness {
	case SourceStatic, SourceFile, SourcePostgres:
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown fairness source %q", c.Sources.Fairness)
	}

	if c.Fairness.PartyA < 0 || c.Fairness.PartyB < 0 {
		return serrors.With(serrors.ErrBadRequest, "fairness burdens must not be negative")
	}

	for id, p := range map[domain.PartyID]Party{domain.PartyA: c.Parties.A, domain.PartyB: c.Parties.B} {
		if p.Name == "" {
			return serrors.With(serrors.ErrBadRequest, "party %s has no name", id)
		}
		if _, err := zones.Load(p.Timezone); err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "party %s timezone %q", id, p.Timezone)
		}
		if c.Sources.Slots == SourceCSV && p.SlotsFile == "" {
			return serrors.With(serrors.ErrBadRequest, "party %s has no slots file", id)
		}
	}

	return nil
}

// Party returns the resolved party with the given ID. The configuration must
// have been validated.
func (c *Config) Party(id domain.PartyID) (domain.Party, error) {
	p := c.Parties.A
	if id == domain.PartyB {
		p = c.Parties.B
	}

	loc, err := zones.Load(p.Timezone)
	if err != nil {
		return domain.Party{}, fmt.Errorf("party %s: %w", id, err)
	}

	return domain.Party{ID: id, Name: p.Name, Location: loc}, nil
}

// SlotFiles maps each party to its CSV file.
func (c *Config) SlotFiles() map[domain.PartyID]string {
	return map[domain.PartyID]string{
		domain.PartyA: c.Parties.A.SlotsFile,
		domain.PartyB: c.Parties.B.SlotsFile,
	}
}
