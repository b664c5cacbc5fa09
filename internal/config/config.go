package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	// 表示設定
	ViewerID      int
	MessageSource string

	// MariaDB接続設定
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// サーバー設定
	ServerPort string
	Env        string

	// CORS設定
	AllowedOrigins []string
}

const (
	SourceMock  = "mock"
	SourceMySQL = "mysql"
)

// Load loads configuration from environment variables
func Load() Config {
	viewerID := 0
	if v := os.Getenv("VIEWER_ID"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("⚠️  Invalid VIEWER_ID %q, using 0: %v", v, err)
		} else {
			viewerID = n
		}
	}

	// 未知の値はそのまま渡し、source.New で弾く
	messageSource := strings.ToLower(strings.TrimSpace(os.Getenv("MESSAGE_SOURCE")))
	if messageSource == "" {
		messageSource = SourceMock
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}

	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://127.0.0.1:3000"
	}

	cfg := Config{
		ViewerID:       viewerID,
		MessageSource:  messageSource,
		DBHost:         dbHost,
		DBPort:         dbPort,
		DBUser:         dbUser,
		DBPassword:     dbPassword,
		DBName:         dbName,
		ServerPort:     serverPort,
		Env:            env,
		AllowedOrigins: strings.Split(allowedOrigins, ","),
	}

	for i := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(cfg.AllowedOrigins[i])
	}

	return cfg
}
