package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret    string
	SchedulerKey string // shared secret for the billing scheduler trigger endpoint
	RedisAddr    string
)

/* =======================
   ENV LOADER
======================= */

func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[CONFIG] no .env file, using system ENV")
		} else {
			log.Println("[CONFIG] .env file loaded")
		}
	} else {
		log.Println("[CONFIG] running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SchedulerKey = GetEnv("FEE_SCHEDULER_KEY")
	RedisAddr = GetEnv("REDIS_ADDR")

	if JWTSecret == "" {
		log.Println("[CONFIG] WARNING: JWT_SECRET is not set")
	}
	if SchedulerKey == "" {
		log.Println("[CONFIG] WARNING: FEE_SCHEDULER_KEY is not set, scheduler trigger endpoint will reject all calls")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func GetEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	default:
		return false
	}
}
