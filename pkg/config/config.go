package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Tenant       TenantConfig
	FeatureFlags FeatureFlagsConfig
	Reports      ReportsConfig
	RateLimit    RateLimitConfig
	CORS         CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Tenant.validate(); err != nil {
		return nil, err
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MYEZZ_APP_ENV" default:"dev"`
	Port         string `envconfig:"MYEZZ_APP_PORT" default:"3001"`
	LogLevel     string `envconfig:"MYEZZ_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MYEZZ_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"MYEZZ_DB_DSN"`

	Host     string `envconfig:"MYEZZ_DB_HOST"`
	Port     int    `envconfig:"MYEZZ_DB_PORT" default:"5432"`
	User     string `envconfig:"MYEZZ_DB_USER"`
	Password string `envconfig:"MYEZZ_DB_PASSWORD"`
	Name     string `envconfig:"MYEZZ_DB_NAME"`
	SSLMode  string `envconfig:"MYEZZ_DB_SSLMODE" default:"require"`

	MaxOpenConns    int           `envconfig:"MYEZZ_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"MYEZZ_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"MYEZZ_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MYEZZ_DB_CONN_MAX_IDLE_TIME" default:"10m"`
	ProbeTimeout    time.Duration `envconfig:"MYEZZ_DB_PROBE_TIMEOUT" default:"5s"`
}

// Configured reports whether store credentials were supplied at all.
func (db DBConfig) Configured() bool {
	return db.DSN != ""
}

type RedisConfig struct {
	URL          string        `envconfig:"MYEZZ_REDIS_URL"`
	Address      string        `envconfig:"MYEZZ_REDIS_ADDR"`
	Password     string        `envconfig:"MYEZZ_REDIS_PASSWORD"`
	DB           int           `envconfig:"MYEZZ_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MYEZZ_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MYEZZ_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MYEZZ_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MYEZZ_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"MYEZZ_REDIS_WRITE_TIMEOUT" default:"3s"`
}

// Enabled reports whether a Redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

// TenantConfig controls how the restaurant id is resolved per request.
// Strict=false keeps the permissive fallback to DefaultID for missing or
// malformed ids.
type TenantConfig struct {
	DefaultID string `envconfig:"MYEZZ_TENANT_DEFAULT_ID" default:"7d6c1f0e-4a55-4c2e-9b1e-3f1b2a9c8d01"`
	Strict    bool   `envconfig:"MYEZZ_TENANT_STRICT" default:"false"`
}

func (t TenantConfig) validate() error {
	if t.Strict && t.DefaultID == "" {
		return nil
	}
	if _, err := uuid.Parse(t.DefaultID); err != nil {
		return fmt.Errorf("%s must be a uuid: %w", EnvTenantID, err)
	}
	return nil
}

type FeatureFlagsConfig struct {
	UseFixtures bool   `envconfig:"MYEZZ_USE_FIXTURES" default:"false"`
	UseSQLite   bool   `envconfig:"MYEZZ_USE_SQLITE" default:"false"`
	SQLitePath  string `envconfig:"MYEZZ_SQLITE_PATH" default:"myezz.db"`
	AutoMigrate bool   `envconfig:"MYEZZ_AUTO_MIGRATE" default:"false"`
}

type ReportsConfig struct {
	QueryTimeout time.Duration `envconfig:"MYEZZ_REPORTS_QUERY_TIMEOUT" default:"10s"`
}

type RateLimitConfig struct {
	ReportsWindow time.Duration `envconfig:"MYEZZ_RATE_LIMIT_REPORTS_WINDOW" default:"1m"`
	ReportsLimit  int           `envconfig:"MYEZZ_RATE_LIMIT_REPORTS_LIMIT" default:"120"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"MYEZZ_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
}

// ensureDSN assembles a DSN from discrete fields. Missing discrete fields are
// not an error: the service then runs on fixtures.
func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	missing := []string{}
	for _, env := range legacyDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}
	if len(missing) == len(legacyDBEnvVars) {
		return nil
	}
	if len(missing) > 0 {
		return fmt.Errorf("either %s or all of %s are required (missing %s)",
			EnvDBDSN, strings.Join(legacyDBEnvVars, ", "), strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
