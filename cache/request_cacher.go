package cache

// RequestCacher keeps a capped per-key list of recent entries.
type RequestCacher interface {
	Write(key string, value []byte) error
	Read(key string) ([]string, error)
}
