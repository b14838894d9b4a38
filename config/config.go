package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI     string
	MongoDB      string
	Port         string
	JWTSecret    string
	SyncEndpoint string
	// Passphrases is the admin allow-list, comma-separated in env.
	Passphrases []string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	cfg := Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "placementDatabase"),
		Port:         getEnv("PORT", "3000"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		SyncEndpoint: getEnv("SYNC_ENDPOINT", ""),
	}

	for _, p := range strings.Split(getEnv("ADMIN_PASSPHRASES", ""), ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.Passphrases = append(cfg.Passphrases, p)
		}
	}
	return cfg
}
