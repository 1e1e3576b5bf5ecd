package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Data source kinds selectable via DATA_SOURCE.
const (
	SourceWorkbook = "xlsx"
	SourcePostgres = "postgres"
)

// TableNames enumerates the three logical tables the lookup reads. The
// names are injected configuration rather than package globals so tests and
// deployments can point the service at any sheet or schema.
type TableNames struct {
	Payments string
	Orders   string
	Refunds  string
}

// Config holds all configuration for the application.
type Config struct {
	Port       string
	Env        string
	DataSource string
	// WorkbookPath locates the .xlsx workbook when DataSource is "xlsx".
	WorkbookPath string
	Tables       TableNames

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RazorpayKey    string
	RazorpaySecret string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// LoadConfig loads configuration from the environment, reading a .env file
// first when one exists.
func LoadConfig() (*Config, error) {
	// A missing .env is fine in containerized deployments where the
	// environment is set directly.
	_ = godotenv.Load()

	config := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DataSource:   getEnv("DATA_SOURCE", SourceWorkbook),
		WorkbookPath: getEnv("WORKBOOK_PATH", "data/customer_data.xlsx"),
		Tables: TableNames{
			Payments: getEnv("PAYMENTS_TABLE", "payments"),
			Orders:   getEnv("ORDERS_TABLE", "orders"),
			Refunds:  getEnv("REFUNDS_TABLE", "refunds"),
		},
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "paytrail"),
		RazorpayKey:    os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret: os.Getenv("RAZORPAY_SECRET"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   os.Getenv("SMTP_USERNAME"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:       os.Getenv("SMTP_FROM"),
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
