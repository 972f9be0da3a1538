package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when ITEMFORGE_CONFIG is not set.
const DefaultPath = "config/itemforge.yaml"

// Environment overrides.
const (
	EnvConfigPath = "ITEMFORGE_CONFIG"
	EnvLogLevel   = "ITEMFORGE_LOG_LEVEL"
	EnvAdminPort  = "ITEMFORGE_ADMIN_PORT"
	EnvDBHost     = "ITEMFORGE_DB_HOST"
	EnvDBPort     = "ITEMFORGE_DB_PORT"
	EnvDBUser     = "ITEMFORGE_DB_USER"
	EnvDBPassword = "ITEMFORGE_DB_PASSWORD"
	EnvDBName     = "ITEMFORGE_DB_NAME"
)

// ItemForge holds all configuration for the item generation service.
type ItemForge struct {
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn warning error"`

	// Database
	Database DatabaseConfig `yaml:"database"`

	// Operator HTTP surface
	Admin AdminConfig `yaml:"admin"`

	// Generation tables
	Generation Generation `yaml:"generation"`

	// Base template cache
	TemplateCache TemplateCacheConfig `yaml:"template_cache"`

	// Loot hook
	Loot LootConfig `yaml:"loot"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"min=1,max=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname" validate:"required"`
	SSLMode  string `yaml:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// AdminConfig: HTTP сервер для админ-команд, /loot и /metrics.
type AdminConfig struct {
	Enabled     bool   `yaml:"enabled"`
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port" validate:"min=1,max=65535"`
	// Без ключей /admin/command и /loot недоступны
	APIKeys         []APIKeyConfig `yaml:"api_keys" validate:"dive"`
	ReadTimeout     time.Duration  `yaml:"read_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration  `yaml:"shutdown_timeout" validate:"gte=0"`
}

// APIKeyConfig is one operator key. Hash is the bcrypt hash of the X-API-Key value.
type APIKeyConfig struct {
	Name        string `yaml:"name" validate:"required"`
	Hash        string `yaml:"hash" validate:"required,startswith=$2"`
	AccessLevel int32  `yaml:"access_level" validate:"min=1"`
}

// Addr returns host:port for net/http.
func (a AdminConfig) Addr() string {
	return fmt.Sprintf("%s:%d", a.BindAddress, a.Port)
}

// TemplateCacheConfig sizes the base template LRU.
type TemplateCacheConfig struct {
	Size int           `yaml:"size" validate:"min=1"`
	TTL  time.Duration `yaml:"ttl" validate:"gt=0"`
}

// LootConfig: настройки хука лута.
type LootConfig struct {
	AnnounceOnLogin bool   `yaml:"announce_on_login"`
	Announcement    string `yaml:"announcement"`
}

// DefaultItemForge returns ItemForge config with sensible defaults.
func DefaultItemForge() ItemForge {
	return ItemForge{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "itemforge",
			Password: "itemforge",
			DBName:   "itemforge",
			SSLMode:  "disable",
		},
		Admin: AdminConfig{
			Enabled:         true,
			BindAddress:     "127.0.0.1",
			Port:            8085,
			ReadTimeout:     10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Generation: DefaultGeneration(),
		TemplateCache: TemplateCacheConfig{
			Size: 1024,
			TTL:  10 * time.Minute,
		},
		Loot: LootConfig{
			AnnounceOnLogin: true,
		},
	}
}

// Path returns the config path from ITEMFORGE_CONFIG or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load loads config from a YAML file, applies environment overrides and validates.
// If the file doesn't exist, defaults are used.
func Load(path string) (ItemForge, error) {
	cfg := DefaultItemForge()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	// .env необязателен, реальные переменные окружения имеют приоритет
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks struct tags and the generation tables.
func (c ItemForge) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if err := c.Generation.check(); err != nil {
		return fmt.Errorf("validating generation config: %w", err)
	}
	return nil
}

func applyEnv(cfg *ItemForge) error {
	setString(&cfg.LogLevel, EnvLogLevel)
	setString(&cfg.Database.Host, EnvDBHost)
	setString(&cfg.Database.User, EnvDBUser)
	setString(&cfg.Database.Password, EnvDBPassword)
	setString(&cfg.Database.DBName, EnvDBName)

	if err := setInt(&cfg.Database.Port, EnvDBPort); err != nil {
		return err
	}
	if err := setInt(&cfg.Admin.Port, EnvAdminPort); err != nil {
		return err
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
