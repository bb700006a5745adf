package env

import "os"
import "strings"
import "path/filepath"

const (
	defaultServerAddr = ":3000"
	defaultRedisAddr  = "localhost:6379"
	appDataDir        = ".gymadmindashboard"
	databaseFile      = "data.db"
)

func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func defaultDatabasePath() string {
	base, e := os.UserHomeDir()

	if e != nil {
		base = "."
	}

	return filepath.Join(base, appDataDir, databaseFile)
}

// Load populates a ServerConfig from the process environment, trimming every value.
func Load() ServerConfig {
	config := ServerConfig{}

	config.Server.Addr = lookup("SERVER_ADDR")

	if config.Server.Addr == "" {
		config.Server.Addr = defaultServerAddr
	}

	config.Datastore = DatastoreConfig{URL: lookup("DATASTORE_URL"), Token: lookup("DATASTORE_TOKEN")}

	config.Redis.Addr = lookup("REDIS_ADDR")

	if config.Redis.Addr == "" {
		config.Redis.Addr = defaultRedisAddr
	}

	config.Redis.Password = lookup("REDIS_PASSWORD")

	config.Storage.DatabasePath = lookup("GYM_DB_PATH")

	if config.Storage.DatabasePath == "" {
		config.Storage.DatabasePath = defaultDatabasePath()
	}

	config.Startup.ClearSeenEvents = lookup("STARTUP_CLEAR_SEEN") == "true"

	return config
}
