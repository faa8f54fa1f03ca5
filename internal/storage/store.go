package storage

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"

	"gopkg.in/yaml.v3"
)

type Storer[T ValidatingSpec] interface {
	Get(Identifier) T
	GetAll() map[Identifier]T
}

// FileStore is a read-only store of assets loaded from a directory tree.
// Files ending in .json, .yaml or .yml are loaded; everything else is
// ignored.
type FileStore[T ValidatingSpec] struct {
	fsys    fs.FS
	root    string
	records map[Identifier]T

	mu sync.RWMutex
}

func NewFileStore[T ValidatingSpec](dir string) (*FileStore[T], error) {
	return NewFSStore[T](os.DirFS(dir), ".")
}

// NewFSStore loads every asset under root in fsys.
func NewFSStore[T ValidatingSpec](fsys fs.FS, root string) (*FileStore[T], error) {
	s := &FileStore[T]{
		fsys:    fsys,
		root:    root,
		records: map[Identifier]T{},
	}

	err := s.load()
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore[T]) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clear existing records when loading
	s.records = map[Identifier]T{}

	return fs.WalkDir(s.fsys, s.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || decoderFor(p) == nil {
			return nil
		}

		asset, err := s.loadAsset(p)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path.Base(p), err)
		}

		err = asset.Validate()
		if err != nil {
			return fmt.Errorf("validating %s: %w", path.Base(p), err)
		}

		// Error if the key is already in use
		_, ok := s.records[asset.Id()]
		if ok {
			return fmt.Errorf("duplicate key detected: %s", asset.Id())
		}

		s.records[asset.Id()] = asset.Spec
		return nil
	})
}

func (s *FileStore[T]) Get(id Identifier) T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.records[id]
	if !ok {
		var nilVal T
		return nilVal
	}

	return val
}

func (s *FileStore[T]) GetAll() map[Identifier]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vals := map[Identifier]T{}
	for id, v := range s.records {
		vals[id] = v
	}

	return vals
}

func (s *FileStore[T]) loadAsset(p string) (*Asset[T], error) {
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	asset := &Asset[T]{}
	err = decoderFor(p)(data, asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return asset, nil
}

type decodeFunc func([]byte, any) error

func decoderFor(p string) decodeFunc {
	switch path.Ext(p) {
	case ".json":
		return json.Unmarshal
	case ".yaml", ".yml":
		return yaml.Unmarshal
	default:
		return nil
	}
}
