package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Gateway      GatewayConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"EDUPAY_APP_ENV" required:"true"`
	Port         string `envconfig:"EDUPAY_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"EDUPAY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"EDUPAY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"EDUPAY_DB_DSN"`
	Driver string `envconfig:"EDUPAY_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"EDUPAY_DB_HOST"`
	LegacyPort     int    `envconfig:"EDUPAY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"EDUPAY_DB_USER"`
	LegacyPassword string `envconfig:"EDUPAY_DB_PASSWORD"`
	LegacyName     string `envconfig:"EDUPAY_DB_NAME"`
	LegacySSLMode  string `envconfig:"EDUPAY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"EDUPAY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"EDUPAY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"EDUPAY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"EDUPAY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type JWTConfig struct {
	Secret            string `envconfig:"EDUPAY_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"EDUPAY_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"EDUPAY_JWT_EXPIRATION_MINUTES" required:"true"`
}

// GatewayConfig describes the external payment gateway handoff.
type GatewayConfig struct {
	Secret          string        `envconfig:"EDUPAY_GATEWAY_SECRET" required:"true"`
	PageURL         string        `envconfig:"EDUPAY_GATEWAY_PAGE_URL" default:"https://payment-gateway.com/pay"`
	Name            string        `envconfig:"EDUPAY_GATEWAY_NAME" default:"PhonePe"`
	DefaultSchoolID string        `envconfig:"EDUPAY_GATEWAY_SCHOOL_ID" required:"true"`
	TokenTTL        time.Duration `envconfig:"EDUPAY_GATEWAY_TOKEN_TTL" default:"5m"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"EDUPAY_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
