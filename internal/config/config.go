package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	JWTExpiry         time.Duration

	SNSRegion string

	// DevConfirmationCode is the sentinel SMS code accepted while no real
	// code-verification provider is wired ("0000" in development).
	DevConfirmationCode string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users         string
	PhoneKeys     string
	Categories    string
	Brands        string
	Manufacturers string
	Countries     string
	Products      string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:         getEnv("DYNAMO_TABLE_USERS", "users"),
			PhoneKeys:     getEnv("DYNAMO_TABLE_PHONE_KEYS", "phone_keys"),
			Categories:    getEnv("DYNAMO_TABLE_CATEGORIES", "categories"),
			Brands:        getEnv("DYNAMO_TABLE_BRANDS", "brands"),
			Manufacturers: getEnv("DYNAMO_TABLE_MANUFACTURERS", "manufacturers"),
			Countries:     getEnv("DYNAMO_TABLE_COUNTRIES", "countries"),
			Products:      getEnv("DYNAMO_TABLE_PRODUCTS", "products"),
		},

		JWTPrivateKeyPath: getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:  getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTExpiry:         time.Duration(getEnvInt("JWT_EXPIRY_MINUTES", 30)) * time.Minute,

		SNSRegion: getEnv("SNS_REGION", "us-east-1"),

		DevConfirmationCode: getEnv("DEV_CONFIRMATION_CODE", "0000"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
