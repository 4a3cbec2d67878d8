package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr    string
	GinMode    string
	DBDSN      string
	JWTSecret  string
	UploadsDir string
}

func LoadEnv() Env {
	// .env is optional; deployments set variables directly.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "legalease-dev-secret-change-me"
	}

	uploadsDir := strings.TrimSpace(os.Getenv("UPLOADS_DIR"))
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}

	return Env{
		AppAddr:    appAddr,
		GinMode:    strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:      strings.TrimSpace(os.Getenv("DB_DSN")),
		JWTSecret:  jwtSecret,
		UploadsDir: uploadsDir,
	}
}
