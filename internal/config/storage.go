package config

// StorageConfig holds settings for the saved-game store.
type StorageConfig struct {
	// Dir is the database directory. Empty means the platform data dir.
	Dir string

	// InMemory keeps saves for the life of the process only.
	InMemory bool
}

// NewStorageConfig creates a StorageConfig that uses the platform data dir.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{}
}
