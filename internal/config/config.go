package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultSQLiteDSN   = "shoppingpaglu.db"
	defaultPostgresDSN = "host=localhost port=5432 user=postgres password=postgres dbname=shoppingpaglu sslmode=disable"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（4000）

	DBDriver    string // sqlite / postgres
	DatabaseDSN string // sqliteならファイルパス

	JWTSecret      string        // JWT署名シークレット
	AccessTokenTTL time.Duration // アクセストークンの有効期限
	BcryptCost     int

	CheckoutAtomic bool // 注文ヘッダと明細を1トランザクションで書くか
	SchemaStrict   bool // テーブル作成失敗で起動を止めるか

	StaticDir string // 静的ファイル（存在すれば配信）
	GoEnv     string // dev/prod
	LogLevel  string
}

// Loadは.env（あれば）と環境変数から設定を作る
func Load() (Config, error) {
	//.envが無いのは問題なし
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnvは環境変数だけから設定を作る（未設定はデフォルト）
func FromEnv() (Config, error) {
	cfg := Config{
		Port:      getenv("PORT", "4000"),
		DBDriver:  strings.ToLower(getenv("DB_DRIVER", DriverSQLite)),
		JWTSecret: getenv("JWT_SECRET", "dev_secret_change_me"),
		StaticDir: getenv("STATIC_DIR", "public"),
		GoEnv:     getenv("GO_ENV", "dev"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		cfg.DatabaseDSN = getenv("DATABASE_DSN", defaultSQLiteDSN)
	case DriverPostgres:
		cfg.DatabaseDSN = getenv("DATABASE_DSN", defaultPostgresDSN)
	default:
		return Config{}, fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", cfg.DBDriver)
	}

	var err error
	if cfg.AccessTokenTTL, err = durationEnv("ACCESS_TOKEN_TTL", 15*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost, err = intEnv("BCRYPT_COST", 10); err != nil {
		return Config{}, err
	}
	if cfg.CheckoutAtomic, err = boolEnv("CHECKOUT_ATOMIC", true); err != nil {
		return Config{}, err
	}
	if cfg.SchemaStrict, err = boolEnv("SCHEMA_STRICT", false); err != nil {
		return Config{}, err
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// Addrはlisten用のアドレス（":4000"形式）
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) IsProd() bool {
	return c.GoEnv == "prod" || c.GoEnv == "production"
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be bool: %w", key, err)
	}
	return b, nil
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
