package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStore(t *testing.T, s Store) {
	t.Helper()
	a := assert.New(t)

	_, ok, err := s.Get("bankroll")
	a.NoError(err)
	a.False(ok)

	a.NoError(s.Set("bankroll", "1000"))

	val, ok, err := s.Get("bankroll")
	a.NoError(err)
	a.True(ok)
	a.Equal("1000", val)

	a.NoError(s.Set("bankroll", "850"))
	val, _, _ = s.Get("bankroll")
	a.Equal("850", val)

	a.NoError(s.Delete("bankroll"))
	_, ok, err = s.Get("bankroll")
	a.NoError(err)
	a.False(ok)

	// deleting a missing key is fine
	a.NoError(s.Delete("bankroll"))
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackjack.db")
	s, err := NewSQLiteStore(path)
	assert.NoError(t, err)
	defer s.Close() // nolint:errcheck

	testStore(t, s)

	// values survive a reopen
	assert.NoError(t, s.Set("deck", `{"drawPile":["AH"],"discardPile":[]}`))
	assert.NoError(t, s.Close())

	s2, err := NewSQLiteStore(path)
	assert.NoError(t, err)
	defer s2.Close() // nolint:errcheck

	val, ok, err := s2.Get("deck")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"drawPile":["AH"],"discardPile":[]}`, val)
}
