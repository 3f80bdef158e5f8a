package cmd

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends accepted by STORE_BACKEND.
const (
	StoreBackendMemory = "memory"
	StoreBackendFile   = "file"
	StoreBackendSQLite = "sqlite"
)

type Config struct {
	HTTPPort           string
	LogLevel           string
	StoreBackend       string
	StoreDir           string
	StoreSQLitePath    string
	StoreKey           string
	AdminEmail         string
	UPIPayeeVPA        string
	UPIPayeeName       string
	FlushRetrySchedule string
}

// LoadConfig reads the environment, after loading envFile when it exists.
// An empty envFile skips the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_BACKEND", StoreBackendFile)
	v.SetDefault("STORE_DIR", "./data")
	v.SetDefault("STORE_SQLITE_PATH", "./data/grabgo.db")
	v.SetDefault("STORE_KEY", "grabgo_orders")
	v.SetDefault("ADMIN_EMAIL", "admin@grabgo.in")
	v.SetDefault("UPI_PAYEE_VPA", "grabgo@okhdfc")
	v.SetDefault("UPI_PAYEE_NAME", "GrabGo")
	v.SetDefault("FLUSH_RETRY_SCHEDULE", "*/5 * * * * *")

	cfg := Config{
		HTTPPort:           v.GetString("HTTP_PORT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		StoreBackend:       v.GetString("STORE_BACKEND"),
		StoreDir:           v.GetString("STORE_DIR"),
		StoreSQLitePath:    v.GetString("STORE_SQLITE_PATH"),
		StoreKey:           v.GetString("STORE_KEY"),
		AdminEmail:         v.GetString("ADMIN_EMAIL"),
		UPIPayeeVPA:        v.GetString("UPI_PAYEE_VPA"),
		UPIPayeeName:       v.GetString("UPI_PAYEE_NAME"),
		FlushRetrySchedule: v.GetString("FLUSH_RETRY_SCHEDULE"),
	}

	switch cfg.StoreBackend {
	case StoreBackendMemory, StoreBackendFile, StoreBackendSQLite:
	default:
		return Config{}, errors.New("STORE_BACKEND must be one of memory, file, sqlite; got " + cfg.StoreBackend)
	}

	return cfg, nil
}
