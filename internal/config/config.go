package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
	Printer    PrinterConfig
	Restaurant RestaurantConfig
	Admin      AdminConfig
}

type AppConfig struct {
	Name      string
	Env       string
	Port      string
	Debug     bool
	StaticDir string
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

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
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

type PrinterConfig struct {
	Type    string // "usb", "network", or "none"
	USBPath string
	Address string
	Width   int // characters per line
}

// RestaurantConfig seeds the receipt profile on first start. After that the
// profile lives in the database and is edited through the settings API.
type RestaurantConfig struct {
	Name     string
	Tagline1 string
	Tagline2 string
	Footer   string
}

type AdminConfig struct {
	Username string
	Password string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pos-backend")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("APP_STATIC_DIR", "./public")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "pos")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 48)
	viper.SetDefault("RESTAURANT_NAME", "OM SAI FAMILY RESTAURANT")
	viper.SetDefault("RESTAURANT_TAGLINE1", "Veg & Non-Veg | Free Wi-Fi")
	viper.SetDefault("RESTAURANT_TAGLINE2", "Bypass Road, Samudrapur")
	viper.SetDefault("RESTAURANT_FOOTER", "Thank you, visit again!")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "")

	return &Config{
		App: AppConfig{
			Name:      viper.GetString("APP_NAME"),
			Env:       viper.GetString("APP_ENV"),
			Port:      viper.GetString("APP_PORT"),
			Debug:     viper.GetBool("APP_DEBUG"),
			StaticDir: viper.GetString("APP_STATIC_DIR"),
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
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
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
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
		Restaurant: RestaurantConfig{
			Name:     viper.GetString("RESTAURANT_NAME"),
			Tagline1: viper.GetString("RESTAURANT_TAGLINE1"),
			Tagline2: viper.GetString("RESTAURANT_TAGLINE2"),
			Footer:   viper.GetString("RESTAURANT_FOOTER"),
		},
		Admin: AdminConfig{
			Username: viper.GetString("ADMIN_USERNAME"),
			Password: viper.GetString("ADMIN_PASSWORD"),
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
