package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// fileImageDataStore stores each image as a file named by the sha256 of its URL.
type fileImageDataStore struct {
	fs  billy.Filesystem
	dir string
	mu  sync.RWMutex
}

func NewFileImageDataStore(fs billy.Filesystem, dir string) ImageDataStore {
	return &fileImageDataStore{fs: fs, dir: dir}
}

func (s *fileImageDataStore) InsertImageData(ctx context.Context, data []byte, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create image data dir: %w", err)
	}
	name := s.filename(url)
	tmp := name + ".tmp"
	if err := util.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write image data: %w", err)
	}
	if err := s.fs.Rename(tmp, name); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace image data: %w", err)
	}
	return nil
}

func (s *fileImageDataStore) RetrieveImageData(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := util.ReadFile(s.fs, s.filename(url))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read image data: %w", err)
	}
	return data, nil
}

func (s *fileImageDataStore) filename(url string) string {
	hash := sha256.Sum256([]byte(url))
	return s.fs.Join(s.dir, hex.EncodeToString(hash[:]))
}
