package config

// EnvPrefix namespaces every variable read by envconfig.
const EnvPrefix = "MYEZZ"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv       = "MYEZZ_APP_ENV"
	EnvPort         = "MYEZZ_APP_PORT"
	EnvLogLevel     = "MYEZZ_LOG_LEVEL"
	EnvDBDSN        = "MYEZZ_DB_DSN"
	EnvDBHost       = "MYEZZ_DB_HOST"
	EnvDBUser       = "MYEZZ_DB_USER"
	EnvDBName       = "MYEZZ_DB_NAME"
	EnvRedisURL     = "MYEZZ_REDIS_URL"
	EnvTenantID     = "MYEZZ_TENANT_DEFAULT_ID"
	EnvTenantStrict = "MYEZZ_TENANT_STRICT"
	EnvUseFixtures  = "MYEZZ_USE_FIXTURES"
	EnvUseSQLite    = "MYEZZ_USE_SQLITE"
	EnvSQLitePath   = "MYEZZ_SQLITE_PATH"
)

// legacyDBEnvVars must all be present when no DSN is configured.
var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
