package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Init loads the environment and prepares the shared logger. A missing .env
// file is fine in Lambda, where configuration comes from the function env.
func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}

	InitLogger()
	InitValidator()
}

func MustGetenv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		logrus.Fatalf("missing required environment variable %s", key)
	}
	return v
}
