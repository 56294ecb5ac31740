package config

const EnvPrefix = "EDUPAY"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names, kept in one place so tests and docs stay honest.
const (
	EnvAppEnv   = "EDUPAY_APP_ENV"
	EnvPort     = "EDUPAY_APP_PORT"
	EnvLogLevel = "EDUPAY_LOG_LEVEL"

	EnvDBDSN      = "EDUPAY_DB_DSN"
	EnvDBHost     = "EDUPAY_DB_HOST"
	EnvDBPort     = "EDUPAY_DB_PORT"
	EnvDBUser     = "EDUPAY_DB_USER"
	EnvDBPassword = "EDUPAY_DB_PASSWORD"
	EnvDBName     = "EDUPAY_DB_NAME"

	EnvJWTSecret  = "EDUPAY_JWT_SECRET"
	EnvJWTIssuer  = "EDUPAY_JWT_ISSUER"
	EnvJWTExpMins = "EDUPAY_JWT_EXPIRATION_MINUTES"

	EnvGatewaySecret    = "EDUPAY_GATEWAY_SECRET"
	EnvGatewayPageURL   = "EDUPAY_GATEWAY_PAGE_URL"
	EnvGatewayName      = "EDUPAY_GATEWAY_NAME"
	EnvGatewaySchoolID  = "EDUPAY_GATEWAY_SCHOOL_ID"
	EnvGatewayTokenTTL  = "EDUPAY_GATEWAY_TOKEN_TTL"
	EnvAutoMigrate      = "EDUPAY_AUTO_MIGRATE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
