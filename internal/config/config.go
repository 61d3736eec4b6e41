package config

import "os"

type Config struct {
	Addr              string
	DataDir           string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	GeminiAPIKey      string
	GeminiModel       string
	Currency          string
}

func Load() *Config {
	return &Config{
		Addr:              getEnv("ADDR", ":8080"),
		DataDir:           getEnv("DATA_DIR", "data"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		Currency:          getEnv("CURRENCY", "SAR"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
