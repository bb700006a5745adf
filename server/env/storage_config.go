package env

// StorageConfig locates the local sqlite database shared with the dashboard
type StorageConfig struct {
	DatabasePath string
}
