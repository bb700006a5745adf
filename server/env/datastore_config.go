package env

// DatastoreConfig stores the remote datastore endpoint and credential used for mirroring attendance
type DatastoreConfig struct {
	URL   string
	Token string
}
