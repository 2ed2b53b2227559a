// Package storage provides ports.Storage backends: a directory of JSON files
// and an embedded bbolt database.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/klotski/internal/domain"
	"svw.info/klotski/internal/ports"
)

// ErrNotFound reports an unknown puzzle id.
var ErrNotFound = errors.New("puzzle not found")

// FS stores each puzzle as <dir>/<id>.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var _ ports.Storage = (*FS)(nil)

func (s *FS) pathFor(id string) string {
	return filepath.Join(s.dir, strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.pathFor(p.ID))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []domain.PuzzleMeta
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var p domain.Puzzle
		if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
			continue
		}
		out = append(out, domain.PuzzleMeta{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt})
	}
	return out, nil
}
