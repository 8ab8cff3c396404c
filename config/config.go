package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config đọc biến môi trường, .env được nạp một lần nếu có
func Config(key string) string {
	loadOnce.Do(func() {
		_ = godotenv.Load()
	})
	return strings.TrimSpace(os.Getenv(key))
}

func ConfigOr(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}

func Bool(key string) bool {
	v, err := strconv.ParseBool(Config(key))
	if err != nil {
		return false
	}
	return v
}

func Int(key string, def int) int {
	v, err := strconv.Atoi(Config(key))
	if err != nil {
		return def
	}
	return v
}
