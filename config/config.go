package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	Port        string
	CatalogPath string
	DatabaseURL string

	StudioName    string
	StudioTagline string
	StudioCities  string
	StudioPhone   string
	StudioEmail   string

	GoogleServiceAccountEmail string
	GoogleServiceAccountKey   string
	GoogleCalendarID          string
	ReminderTimezone          string
	ReminderStartHour         int
	ReminderEndHour           int

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioPhoneNumber    string
	TwilioWhatsAppNumber string

	OwnerUsername     string
	OwnerPassword     string
	OwnerPasswordHash string
}

// Load reads configuration from environment variables or defaults.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		CatalogPath: getEnv("CATALOG_PATH", "data/services.json"),
		DatabaseURL: os.Getenv("DB_URL"),

		StudioName:    getEnv("STUDIO_NAME", "SREE PIX"),
		StudioTagline: getEnv("STUDIO_TAGLINE", "Photography & Event management"),
		StudioCities:  getEnv("STUDIO_CITIES", "Namakkal & Chennai"),
		StudioPhone:   getEnv("STUDIO_PHONE", "9789226868, 8903868682"),
		StudioEmail:   getEnv("STUDIO_EMAIL", "sreepixnkl@gmail.com"),

		GoogleServiceAccountEmail: os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL"),
		GoogleServiceAccountKey:   os.Getenv("GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY"),
		GoogleCalendarID:          os.Getenv("GOOGLE_CALENDAR_ID"),
		ReminderTimezone:          getEnv("REMINDER_TIMEZONE", "Asia/Kolkata"),
		ReminderStartHour:         getEnvInt("REMINDER_START_HOUR", 10),
		ReminderEndHour:           getEnvInt("REMINDER_END_HOUR", 18),

		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:    os.Getenv("TWILIO_PHONE_NUMBER"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),

		OwnerUsername:     getEnv("OWNER_USERNAME", "owner"),
		OwnerPassword:     os.Getenv("OWNER_PASSWORD"),
		OwnerPasswordHash: os.Getenv("OWNER_PASSWORD_HASH"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
