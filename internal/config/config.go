package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Shop      ShopConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// StorageConfig selects the persistence driver. "csv" keeps the flat-file
// tables under Path; "postgres" uses the relational store.
type StorageConfig struct {
	Driver string
	Path   string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

// ShopConfig is the invoice header identity, injected into the billing
// service rather than read from a global.
type ShopConfig struct {
	Name           string
	Owner          string
	Address        string
	Phone          string
	Email          string
	GST            string
	CurrencySymbol string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "billing-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("STORAGE_DRIVER", "csv")
	viper.SetDefault("STORAGE_PATH", "./data")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "billing")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("SHOP_NAME", "Prime Retail Store")
	viper.SetDefault("SHOP_OWNER", "John Doe")
	viper.SetDefault("SHOP_ADDRESS", "123 Business Street, Commerce City")
	viper.SetDefault("SHOP_PHONE", "+1 (555) 123-4567")
	viper.SetDefault("SHOP_EMAIL", "contact@primeretail.com")
	viper.SetDefault("SHOP_GST", "GST123456789")
	viper.SetDefault("SHOP_CURRENCY_SYMBOL", "Rs.")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8501")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Storage: StorageConfig{
			Driver: viper.GetString("STORAGE_DRIVER"),
			Path:   viper.GetString("STORAGE_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		Shop: ShopConfig{
			Name:           viper.GetString("SHOP_NAME"),
			Owner:          viper.GetString("SHOP_OWNER"),
			Address:        viper.GetString("SHOP_ADDRESS"),
			Phone:          viper.GetString("SHOP_PHONE"),
			Email:          viper.GetString("SHOP_EMAIL"),
			GST:            viper.GetString("SHOP_GST"),
			CurrencySymbol: viper.GetString("SHOP_CURRENCY_SYMBOL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}

// BillsPath returns the ledger file location for the csv driver.
func (c *StorageConfig) BillsPath() string {
	return filepath.Join(c.Path, "bills.csv")
}

// InventoryPath returns the catalog file location for the csv driver.
func (c *StorageConfig) InventoryPath() string {
	return filepath.Join(c.Path, "inventory.csv")
}

// SignaturesPath returns the signature image directory.
func (c *StorageConfig) SignaturesPath() string {
	return filepath.Join(c.Path, "signatures")
}
