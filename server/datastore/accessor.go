package datastore

import "log"
import "sync"
import "strings"
import "github.com/gymadmin/api/server/env"

// Accessor hands out the process-wide datastore client, building it on first use.
// A failed attempt caches nothing, so a later call may try again.
type Accessor struct {
	config env.DatastoreConfig
	dial   func(endpoint, token string) (*Client, error)
	mutex  sync.Mutex
	client *Client
}

// NewAccessor returns an accessor for the given configuration. Nothing is
// validated or connected until the first call to Handle.
func NewAccessor(config env.DatastoreConfig) *Accessor {
	return &Accessor{config: config, dial: NewClient}
}

// Handle returns the shared client, constructing and caching it on the first
// successful call. Concurrent first calls are serialized; at most one client
// is ever constructed.
func (a *Accessor) Handle() (*Client, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	endpoint := strings.TrimSpace(a.config.URL)
	token := strings.TrimSpace(a.config.Token)

	log.Printf("datastore config: url present %t, token present %t", endpoint != "", token != "")

	if endpoint == "" {
		return nil, ConfigurationError{Setting: "datastore url"}
	}

	if token == "" {
		return nil, ConfigurationError{Setting: "datastore token"}
	}

	client, e := a.dial(endpoint, token)

	if e != nil {
		log.Printf("datastore client construction failed: %s", e)
		return nil, ConstructionError{Cause: e}
	}

	log.Printf("datastore client ready for '%s'", endpoint)
	a.client = client

	return client, nil
}
