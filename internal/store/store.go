// Package store reads and writes positions as single-line FEN files.
package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/fenboard/internal/chess"
	"github.com/lgbarn/fenboard/internal/engine"
	"github.com/lgbarn/fenboard/internal/errors"
)

// Store resolves position file names under a directory.
type Store struct {
	Dir string
}

// New returns a store rooted at dir.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

// Resolve returns the path of a position file. Names containing a path
// separator are used as given; bare names resolve under Dir.
func (s *Store) Resolve(name string) string {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// Load decodes the first non-empty line of the named file.
func (s *Store) Load(name string) (*chess.Position, error) {
	path := s.Resolve(name)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		pos, err := engine.NewPositionFromFEN(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}
		return pos, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return nil, errors.Wrapf(errors.ErrInvalidFEN, "%s: no position found", path)
}

// Save writes the FEN of pos to the named file, replacing it atomically.
func (s *Store) Save(name string, pos *chess.Position) error {
	path := s.Resolve(name)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".fenboard-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if _, err := fmt.Fprintln(tmp, engine.PositionToFEN(pos)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// LoadOrDecode decodes arg as a FEN when it contains whitespace and loads
// it as a position file name otherwise.
func (s *Store) LoadOrDecode(arg string) (*chess.Position, error) {
	if strings.ContainsAny(strings.TrimSpace(arg), " \t") {
		return engine.NewPositionFromFEN(arg)
	}
	return s.Load(arg)
}
