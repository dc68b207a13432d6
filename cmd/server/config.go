package main

import (
	"flag"
	"fmt"
	"os"
)

type Config struct {
	Addr       string
	DSN        string
	RedisAddr  string
	RabbitURL  string
	CatalogURL string
	JWTSecret  string
	LogLevel   string
	Env        string
}

func NewConfig() Config {
	var (
		addr string
		dsn  string
	)

	flag.StringVar(&addr, "a", ":8080", "address and port to run server")
	flag.StringVar(&dsn, "d", "", "data source name for database connection")
	flag.Parse()

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		addr = address
	}

	if dsn == "" {
		if d := os.Getenv("DATABASE_URI"); d != "" {
			dsn = d
		} else {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				os.Getenv("MYSQL_USER"),
				os.Getenv("MYSQL_PASSWORD"),
				os.Getenv("MYSQL_HOST"),
				os.Getenv("MYSQL_PORT"),
				os.Getenv("MYSQL_DATABASE"),
			)
		}
	}

	redisAddr := os.Getenv("REDIS_HOST")
	if redisAddr == "" {
		redisAddr = "localhost"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "production"
	}

	return Config{
		Addr:       addr,
		DSN:        dsn,
		RedisAddr:  redisAddr + ":6379",
		RabbitURL:  os.Getenv("RABBITMQ_URL"),
		CatalogURL: os.Getenv("CATALOG_SERVICE_URL"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		LogLevel:   logLevel,
		Env:        env,
	}
}
