package pkgconfig

// Config is the read-only view of configuration used by the application.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat(key string) float64
	GetString(key string) string
	GetArray(key string) []string
	Close() error
}
