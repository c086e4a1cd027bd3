// File: database/repository/kv/interface.go
package kvRepo

// KeyValueStore is the synchronous local store. Reads always observe the
// latest write. A failed read is an error, never a silent absence.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}
