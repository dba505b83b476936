package config

// EnvPrefix is passed to envconfig; fields carry fully qualified tags so the
// prefix only matters for untagged fields.
const EnvPrefix = "techstore"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "TECHSTORE_DB_DSN"
	EnvDBHost = "TECHSTORE_DB_HOST"
	EnvDBUser = "TECHSTORE_DB_USER"
	EnvDBName = "TECHSTORE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)
