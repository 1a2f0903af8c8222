package driven

// ConfigStore provides access to a layered configuration file.
// Keys use dot notation ("storage.driver"); implementations handle the
// file format and nesting.
type ConfigStore interface {
	// All returns a copy of every key and value.
	All() map[string]any

	// Set stores a value in memory. Save persists it.
	Set(key string, value any)

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
