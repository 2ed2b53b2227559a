package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"svw.info/klotski/internal/domain"
	"svw.info/klotski/internal/ports"
)

var bucketPuzzles = []byte("puzzles")

// Bolt stores puzzles in a single-file bbolt database.
type Bolt struct{ db *bolt.DB }

var _ ports.Storage = (*Bolt)(nil)

// OpenBolt opens (or creates) the database at path and ensures the puzzle
// bucket exists.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o666, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPuzzles)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func (s *Bolt) Close() error { return s.db.Close() }

func (s *Bolt) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPuzzles).Put([]byte(p.ID), data)
	})
}

func (s *Bolt) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var out *domain.Puzzle
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketPuzzles).Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		var p domain.Puzzle
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		out = &p
		return nil
	})
	return out, err
}

func (s *Bolt) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPuzzles).ForEach(func(_, data []byte) error {
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				return nil // skip unreadable entries
			}
			out = append(out, domain.PuzzleMeta{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt})
			return nil
		})
	})
	return out, err
}
