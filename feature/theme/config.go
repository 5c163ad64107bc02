package theme

// Config selects where theme preferences are persisted.
type Config struct {
	// Backend is one of "memory", "database" or "object".
	Backend string `mapstructure:"backend" default:"memory"`
}
