package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MinJWTSecretLength é o tamanho mínimo aceito para o segredo HS256
const MinJWTSecretLength = 32

// Config contém todas as configurações da aplicação.
// É construída uma vez no main e repassada aos componentes.
type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Supabase  SupabaseConfig
	Auth      AuthConfig
	Upload    UploadConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	Telemetry TelemetryConfig
	Snowflake SnowflakeConfig
}

type ServerConfig struct {
	Port    string `env:"PORT" envDefault:"8080"`
	Host    string `env:"HOST" envDefault:"0.0.0.0"`
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"` // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        int    `env:"DB_PORT" envDefault:"5432"`
	User        string `env:"DB_USER" envDefault:"postgres"`
	Password    string `env:"DB_PASS"`
	DBName      string `env:"DB_NAME" envDefault:"postgres"`
	SSLMode     string `env:"DB_SSL_MODE" envDefault:"require"`
	MaxConns    int    `env:"DB_MAX_CONNS" envDefault:"10"`
	MinConns    int    `env:"DB_MIN_CONNS" envDefault:"2"`
	MaxIdleTime int    `env:"DB_MAX_IDLE_TIME" envDefault:"300"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

type JWTConfig struct {
	Secret           string        `env:"JWT_SECRET"`
	WebAccessExpiry  time.Duration `env:"JWT_WEB_ACCESS_EXPIRY" envDefault:"24h"`
	AppAccessExpiry  time.Duration `env:"JWT_APP_ACCESS_EXPIRY" envDefault:"15m"`
	RefreshExpiry    time.Duration `env:"JWT_REFRESH_EXPIRY" envDefault:"720h"`
	Issuer           string        `env:"JWT_ISSUER" envDefault:"dentalclinic-backend"`
	RefreshTokenSize int           `env:"JWT_REFRESH_TOKEN_BYTES" envDefault:"64"`
}

// SupabaseConfig aponta para o backend gerenciado (auth + storage)
type SupabaseConfig struct {
	URL        string        `env:"SUPABASE_URL"`
	ServiceKey string        `env:"SUPABASE_SERVICE_KEY"`
	AnonKey    string        `env:"SUPABASE_ANON_KEY"`
	Bucket     string        `env:"SUPABASE_BUCKET" envDefault:"models"`
	Timeout    time.Duration `env:"SUPABASE_TIMEOUT" envDefault:"15s"`
}

type AuthConfig struct {
	PasswordResetRedirectURL string `env:"PASSWORD_RESET_REDIRECT_URL"`
}

type UploadConfig struct {
	TmpDir       string        `env:"UPLOAD_TMP_DIR"`
	MaxSizeMB    int64         `env:"UPLOAD_MAX_SIZE_MB" envDefault:"100"`
	SignedURLTTL time.Duration `env:"SIGNED_URL_TTL" envDefault:"600s"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Driver string `env:"LOG_DRIVER" envDefault:"slog"`
	File   string `env:"LOG_FILE"`
}

type CORSConfig struct {
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

type TelemetryConfig struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	Endpoint    string `env:"OTEL_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"dentalclinic-backend"`
}

type SnowflakeConfig struct {
	Node int64 `env:"SNOWFLAKE_NODE" envDefault:"1"`
}

// Load carrega as configurações do arquivo .env (se existir) e das variáveis de ambiente
func Load() (*Config, error) {
	// .env é opcional: em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate falha cedo quando falta configuração essencial
func (c *Config) Validate() error {
	var errs []error

	if len(c.JWT.Secret) < MinJWTSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", MinJWTSecretLength))
	}
	if c.JWT.RefreshTokenSize < 32 {
		errs = append(errs, errors.New("JWT_REFRESH_TOKEN_BYTES must be at least 32"))
	}
	if c.Supabase.URL == "" {
		errs = append(errs, errors.New("SUPABASE_URL is required"))
	}
	if c.Supabase.ServiceKey == "" {
		errs = append(errs, errors.New("SUPABASE_SERVICE_KEY is required"))
	}
	if c.Upload.SignedURLTTL <= 0 {
		errs = append(errs, errors.New("SIGNED_URL_TTL must be positive"))
	}

	return errors.Join(errs...)
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
