package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/hailam/chessmodel/internal/board"
)

// Storage keys
const (
	keyPreferences = "preferences"
	snapshotPrefix = "snapshot/"
)

// ErrSnapshotNotFound is returned when no snapshot has the requested id.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Preferences stores renderer settings shared by the CLI and the viewer.
type Preferences struct {
	Filler          string    `json:"filler"`
	Color           bool      `json:"color"`
	SquareSize      int       `json:"square_size"`
	ShowCoordinates bool      `json:"show_coordinates"`
	LastUsed        time.Time `json:"last_used"`
}

// DefaultPreferences returns default preferences
func DefaultPreferences() *Preferences {
	return &Preferences{
		Filler:          "#",
		Color:           false,
		SquareSize:      64,
		ShowCoordinates: true,
		LastUsed:        time.Now(),
	}
}

// PieceRecord is the stored form of one piece.
type PieceRecord struct {
	Column byte   `json:"column"`
	Row    int    `json:"row"`
	Color  string `json:"color"`
	Type   string `json:"type"`
}

// Snapshot is a named, stored GameState.
type Snapshot struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"created_at"`
	Pieces    []PieceRecord `json:"pieces"`
}

// NewSnapshot captures the pieces of g under a fresh id.
func NewSnapshot(name string, g *board.GameState) Snapshot {
	snap := Snapshot{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Pieces:    make([]PieceRecord, 0, len(g.Pieces())),
	}
	for _, p := range g.Pieces() {
		snap.Pieces = append(snap.Pieces, PieceRecord{
			Column: p.Column(),
			Row:    p.Row(),
			Color:  p.Color().Name(),
			Type:   p.Type().Name(),
		})
	}
	return snap
}

// GameState rebuilds the stored pieces, in their stored order.
func (s Snapshot) GameState() (*board.GameState, error) {
	pieces := make([]*board.Piece, 0, len(s.Pieces))
	for i, rec := range s.Pieces {
		color, err := board.ParseColor(rec.Color)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: piece %d: %w", s.ID, i, err)
		}
		pt, err := board.ParsePieceType(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: piece %d: %w", s.ID, i, err)
		}
		pieces = append(pieces, board.NewPiece(rec.Column, rec.Row, color, pt))
	}
	return board.NewGameStateFromPieces(pieces), nil
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the store in the default database directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) a store in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", dir, err)
	}

	return &Storage{db: db}, nil
}

// OpenExisting opens the store in the default database directory if a
// database already exists there. It returns a nil Storage and no error when
// there is none, and never creates directories.
func OpenExisting() (*Storage, error) {
	dir, err := databaseDir()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(filepath.Join(dir, badger.ManifestFilename)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return Open(dir)
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastUsed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveSnapshot stores the pieces of g under name and returns the stored
// snapshot with its new id.
func (s *Storage) SaveSnapshot(name string, g *board.GameState) (Snapshot, error) {
	snap := NewSnapshot(name, g)

	data, err := json.Marshal(snap)
	if err != nil {
		return Snapshot{}, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey(snap.ID), data)
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("save snapshot %q: %w", name, err)
	}
	return snap, nil
}

// LoadSnapshot returns the snapshot with the given id.
func (s *Storage) LoadSnapshot(id string) (Snapshot, error) {
	var snap Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})

	return snap, err
}

// ListSnapshots returns every stored snapshot, oldest first.
func (s *Storage) ListSnapshots() ([]Snapshot, error) {
	var snaps []Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(snapshotPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var snap Snapshot
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &snap)
			})
			if err != nil {
				return err
			}
			snaps = append(snaps, snap)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(snaps, func(i, j int) bool {
		return snaps[i].CreatedAt.Before(snaps[j].CreatedAt)
	})
	return snaps, nil
}

// DeleteSnapshot removes the snapshot with the given id.
func (s *Storage) DeleteSnapshot(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(snapshotKey(id)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
		} else if err != nil {
			return err
		}
		return txn.Delete(snapshotKey(id))
	})
}

func snapshotKey(id string) []byte {
	return []byte(snapshotPrefix + id)
}
