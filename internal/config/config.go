package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
)

const (
	DefaultAdminEmail      = "admin@admin.com"
	DefaultPort            = "8080"
	DefaultJWTExpiration   = 24 * time.Hour
	DefaultProductCacheTTL = 5 * time.Minute

	// GO_ENV=dev のときだけ使う
	devJWTSecret = "dev_secret_change_me"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あれば POSTGRES_* より優先
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string

	JWTSecret     string        // JWT署名シークレット
	JWTExpiration time.Duration // トークン有効期限

	AdminEmail string // 管理者のemail（完全一致で判定）

	RedisAddr       string // 空なら商品キャッシュ無効
	RedisPassword   string
	ProductCacheTTL time.Duration

	GoEnv             string // dev/prod
	LogLevel          log.Lvl
	CORSAllowOrigins  []string
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

// Loadは環境変数
func Load() (Config, error) {
	jwtExp, err := durationEnv("JWT_EXPIRATION", DefaultJWTExpiration)
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := durationEnv("PRODUCT_CACHE_TTL", DefaultProductCacheTTL)
	if err != nil {
		return Config{}, err
	}
	shutdown, err := durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	lvl, err := parseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenv("PORT", DefaultPort),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "producttrial"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: jwtExp,

		AdminEmail: getenv("ADMIN_EMAIL", DefaultAdminEmail),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		ProductCacheTTL: cacheTTL,

		GoEnv:             getenv("GO_ENV", "dev"),
		LogLevel:          lvl,
		CORSAllowOrigins:  splitList(getenv("CORS_ALLOW_ORIGINS", "http://localhost:4200")),
		ShutdownTimeout:   shutdown,
		ReadHeaderTimeout: 5 * time.Second,
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		if cfg.GoEnv != "dev" {
			return Config{}, fmt.Errorf("JWT_SECRET is required")
		}
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.JWTExpiration <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRATION must be positive")
	}
	if strings.TrimSpace(cfg.AdminEmail) == "" {
		return Config{}, fmt.Errorf("ADMIN_EMAIL must not be blank")
	}

	return cfg, nil
}

// Addrは ":8080" 形式
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// DSNは DATABASE_URL を最優先
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}

func parseLogLevel(v string) (log.Lvl, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "info":
		return log.INFO, nil
	case "debug":
		return log.DEBUG, nil
	case "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug/info/warn/error/off: %q", v)
	}
}

func splitList(v string) []string {
	out := make([]string, 0)
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
