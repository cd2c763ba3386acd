package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Key layout
const (
	gameKeyPrefix = "game:"
	keyStats      = "stats"
)

// SavedGame is the persisted form of a game in progress or just
// finished: the position snapshot plus the move list that produced it.
type SavedGame struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	Moves   []string  `json:"moves"` // "e2e4" coordinate pairs, in play order
	Result  string    `json:"result,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

// Stats accumulates finished-game counts across sessions.
type Stats struct {
	GamesFinished int            `json:"games_finished"`
	ByReason      map[string]int `json:"by_reason"`
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{ByReason: make(map[string]int)}
}

// Storage wraps BadgerDB for persistent saved games and statistics.
type Storage struct {
	db *badger.DB
}

// Open opens (creating if needed) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database in %s: %w", dir, err)
	}
	return &Storage{db: db}, nil
}

// OpenDefault opens the database in the platform data directory.
func OpenDefault() (*Storage, error) {
	dir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame writes game under its name, overwriting any previous save
// with the same name. The SavedAt stamp is set here.
func (s *Storage) SaveGame(game *SavedGame) error {
	if strings.TrimSpace(game.Name) == "" {
		return fmt.Errorf("a saved game needs a non-empty name")
	}
	game.SavedAt = time.Now()

	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gameKeyPrefix+game.Name), data)
	})
}

// LoadGame reads the saved game with the given name. The second return
// is false when no save exists under that name.
func (s *Storage) LoadGame(name string) (*SavedGame, bool, error) {
	var game SavedGame
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gameKeyPrefix + name))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &game)
		})
	})
	if err != nil || !found {
		return nil, false, err
	}
	return &game, true, nil
}

// DeleteGame removes the saved game with the given name. Deleting a
// name that was never saved is not an error.
func (s *Storage) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gameKeyPrefix + name))
	})
}

// ListGames returns every saved game, sorted by name.
func (s *Storage) ListGames() ([]*SavedGame, error) {
	var games []*SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gameKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var game SavedGame
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &game)
			})
			if err != nil {
				return err
			}
			games = append(games, &game)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(games, func(i, j int) bool { return games[i].Name < games[j].Name })
	return games, nil
}

// LoadStats loads statistics, returning empty stats if none recorded.
func (s *Storage) LoadStats() (*Stats, error) {
	stats := NewStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	return stats, err
}

// RecordResult counts one finished game under its game-over reason.
func (s *Storage) RecordResult(reason string) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}
	stats.GamesFinished++
	if stats.ByReason == nil {
		stats.ByReason = make(map[string]int)
	}
	stats.ByReason[reason]++

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}
