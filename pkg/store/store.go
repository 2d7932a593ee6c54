// Package store provides the key–value persistence layer for game state
// that must survive a process restart, such as the player's bankroll and
// the deck snapshot.
package store

// Store defines the interface for persisted game state
type Store interface {
	// Get retrieves the value for a key. The second return value is false
	// if the key has never been set.
	Get(key string) (string, bool, error)

	// Set writes the value for a key, overwriting any previous value
	Set(key, value string) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key string) error
}
