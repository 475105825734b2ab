package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string
	TodoFile    string
	UploadDir   string
	StaticDir   string
	TemplateDir string
	FrontendURL string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		TodoFile:    getEnv("TODO_FILE", "todo.json"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		StaticDir:   getEnv("STATIC_DIR", "static"),
		TemplateDir: getEnv("TEMPLATE_DIR", "templates"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
