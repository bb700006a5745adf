package env

import "github.com/go-redis/redis"

// ServerConfig contains the configuration necessary for running the gymadmin http.Server
type ServerConfig struct {
	Server struct {
		Addr string
	}
	Datastore DatastoreConfig
	Redis     redis.Options
	Storage   StorageConfig
	Startup   struct {
		ClearSeenEvents bool
	}
}
