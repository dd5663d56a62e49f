package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	JWTKey    string
	SaltRound int

	AdminEmail     string
	AdminPassword  string
	GoogleClientID string

	PaystackPublicKey string
	PaystackSecretKey string
	PaystackBaseURL   string
	Currency          string
	ShippingFee       float64
	PricePerMeal      float64

	GeminiAPIKey string
	GeminiModel  string

	SendgridAPIKey  string
	EmailSender     string
	EmailSenderName string

	UploadDir     string
	MaxUploadSize int64

	SchedulerEnabled bool
	SeedDemoData     bool

	LogLevel  string
	LogFormat string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "homecooked"),
		DBPath:     getEnv("DB_PATH", "homecooked.db"),

		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@homecooked.co.uk"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "changeme123"),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		PaystackPublicKey: getEnv("PAYSTACK_PUBLIC_KEY", ""),
		PaystackSecretKey: getEnv("PAYSTACK_SECRET_KEY", ""),
		PaystackBaseURL:   getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		Currency:          getEnv("CURRENCY", "GBP"),
		ShippingFee:       getEnvFloat("SHIPPING_FEE", 4.95),
		PricePerMeal:      getEnvFloat("PRICE_PER_MEAL", 8.50),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		SendgridAPIKey:  getEnv("SENDGRID_API_KEY", ""),
		EmailSender:     getEnv("EMAIL_SENDER", "hello@homecooked.co.uk"),
		EmailSenderName: getEnv("EMAIL_SENDER_NAME", "Homecooked"),

		UploadDir:     getEnv("UPLOAD_DIR", "./public/uploads"),
		MaxUploadSize: int64(getEnvInt("MAX_UPLOAD_SIZE", 5<<20)),

		SchedulerEnabled: getEnvBool("SCHEDULER_ENABLED", true),
		SeedDemoData:     getEnvBool("SEED_DEMO_DATA", true),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AdminPassword == "changeme123" {
		log.Println("Warning: Using default ADMIN_PASSWORD. Update it in your environment.")
	}
	if AppConfig.PaystackSecretKey == "" {
		log.Println("Warning: PAYSTACK_SECRET_KEY not set. Payment references will not be verified.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
