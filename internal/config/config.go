package config

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"github.com/jellydator/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const DefaultEnvFile = ".env"

const (
	apiPortEnvKey         = "api_port"
	dbConnEnvKey          = "db_connection_url"
	jwtSecretEnvKey       = "jwt_secret"
	frontendURLEnvKey     = "frontend_url"
	logLevelEnvKey        = "log_level"
	dbLogLevelEnvKey      = "db_log_level"
	shutdownTimeoutEnvKey = "shutdown_timeout"
	requestTimeoutEnvKey  = "request_timeout"
	tokenTTLEnvKey        = "token_ttl"
)

var portPattern = regexp.MustCompile(`^[0-9]{1,5}$`)

type App struct {
	Port            string        `mapstructure:"api_port"`
	DBConnectionURL string        `mapstructure:"db_connection_url"`
	JWTSecret       string        `mapstructure:"jwt_secret"`
	FrontendURL     string        `mapstructure:"frontend_url"`
	LogLevel        string        `mapstructure:"log_level"`
	DBLogLevel      string        `mapstructure:"db_log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	TokenTTL        time.Duration `mapstructure:"token_ttl"`
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required, validation.Match(portPattern)),
		validation.Field(&a.DBConnectionURL, validation.Required),
		validation.Field(&a.LogLevel, validation.By(zapLevel)),
		validation.Field(&a.DBLogLevel, validation.In("silent", "error", "warn", "info")),
		validation.Field(&a.ShutdownTimeout, validation.Min(time.Duration(0)).Exclusive()),
		validation.Field(&a.RequestTimeout, validation.Min(time.Duration(0)).Exclusive()),
		validation.Field(&a.TokenTTL, validation.Min(time.Duration(0)).Exclusive()),
	)
}

// AllowedOrigins is the local front-end dev server plus FRONTEND_URL when set.
func (a App) AllowedOrigins() []string {
	origins := []string{"http://localhost:5173"}
	if a.FrontendURL != "" {
		origins = append(origins, a.FrontendURL)
	}
	return origins
}

// NewApp reads the configuration from the environment, falling back to
// values from .env for keys that are not set.
func NewApp() (App, error) {
	return NewAppFromFile(DefaultEnvFile)
}

func NewAppFromFile(envFile string) (App, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var app App
	if err := v.Unmarshal(&app); err != nil {
		return App{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("invalid config: %w", err)
	}

	return app, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(apiPortEnvKey, "5000")
	v.SetDefault(logLevelEnvKey, "info")
	v.SetDefault(dbLogLevelEnvKey, "warn")
	v.SetDefault(shutdownTimeoutEnvKey, 5*time.Second)
	v.SetDefault(requestTimeoutEnvKey, 10*time.Second)
	v.SetDefault(tokenTTLEnvKey, 7*24*time.Hour)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		apiPortEnvKey,
		dbConnEnvKey,
		jwtSecretEnvKey,
		frontendURLEnvKey,
		logLevelEnvKey,
		dbLogLevelEnvKey,
		shutdownTimeoutEnvKey,
		requestTimeoutEnvKey,
		tokenTTLEnvKey,
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

func zapLevel(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := zapcore.ParseLevel(s); err != nil {
		return fmt.Errorf("unknown log level %q", s)
	}
	return nil
}
