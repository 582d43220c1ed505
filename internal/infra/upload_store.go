package infra

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"monastery/pkg/utils"
)

var ErrUploadNotFound = errors.New("upload not found")

// URLPrefix is where stored uploads are served from.
const URLPrefix = "/uploads/"

type StoredFile struct {
	Filename string
	Path     string
	URL      string
	Size     int64
}

// UploadStore persists uploaded photo bytes.
type UploadStore interface {
	// Save stores r under a generated name ending in ext.
	Save(ctx context.Context, ext string, r io.Reader) (StoredFile, error)
	Open(ctx context.Context, filename string) (io.ReadSeekCloser, time.Time, error)
	Delete(ctx context.Context, filename string) error
}

// NewUploadStore selects the upload strategy by driver name.
func NewUploadStore(driver, dir string) (UploadStore, error) {
	switch driver {
	case "disk":
		return NewDiskUploadStore(dir)
	case "memory":
		return NewMemoryUploadStore(), nil
	default:
		return nil, fmt.Errorf("unsupported upload driver %q", driver)
	}
}

// generatedName builds a collision-resistant file name. ext comes from the
// sniffed content type, never from the client's file name.
func generatedName(ext string) (string, error) {
	token, err := utils.GenerateSecureToken(8)
	if err != nil {
		return "", err
	}
	ext = strings.ToLower(ext)
	if !validExt(ext) {
		ext = ""
	}
	return fmt.Sprintf("%d-%s%s", time.Now().Unix(), token, ext), nil
}

func validExt(ext string) bool {
	if len(ext) < 2 || len(ext) > 8 || ext[0] != '.' {
		return false
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// validName rejects anything that is not a bare file name.
func validName(filename string) bool {
	return filename != "" && filename != "." && filename != ".." &&
		path.Base(filename) == filename && filepath.Base(filename) == filename
}

type DiskUploadStore struct {
	dir string
}

func NewDiskUploadStore(dir string) (*DiskUploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskUploadStore{dir: dir}, nil
}

func (s *DiskUploadStore) Save(ctx context.Context, ext string, r io.Reader) (StoredFile, error) {
	name, err := generatedName(ext)
	if err != nil {
		return StoredFile{}, err
	}
	full := filepath.Join(s.dir, name)

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return StoredFile{}, fmt.Errorf("create upload: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(full)
		return StoredFile{}, fmt.Errorf("write upload: %w", err)
	}

	return StoredFile{Filename: name, Path: full, URL: URLPrefix + name, Size: n}, nil
}

func (s *DiskUploadStore) Open(ctx context.Context, filename string) (io.ReadSeekCloser, time.Time, error) {
	if !validName(filename) {
		return nil, time.Time{}, ErrUploadNotFound
	}
	f, err := os.Open(filepath.Join(s.dir, filename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, time.Time{}, ErrUploadNotFound
		}
		return nil, time.Time{}, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, time.Time{}, err
	}
	return f, info.ModTime(), nil
}

func (s *DiskUploadStore) Delete(ctx context.Context, filename string) error {
	if !validName(filename) {
		return ErrUploadNotFound
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

type memoryFile struct {
	data    []byte
	savedAt time.Time
}

// MemoryUploadStore keeps uploads in process memory. Nothing survives a restart.
type MemoryUploadStore struct {
	mu    sync.RWMutex
	files map[string]memoryFile
}

func NewMemoryUploadStore() *MemoryUploadStore {
	return &MemoryUploadStore{files: make(map[string]memoryFile)}
}

func (s *MemoryUploadStore) Save(ctx context.Context, ext string, r io.Reader) (StoredFile, error) {
	name, err := generatedName(ext)
	if err != nil {
		return StoredFile{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return StoredFile{}, fmt.Errorf("read upload: %w", err)
	}

	s.mu.Lock()
	s.files[name] = memoryFile{data: data, savedAt: time.Now()}
	s.mu.Unlock()

	return StoredFile{Filename: name, Path: "memory://" + name, URL: URLPrefix + name, Size: int64(len(data))}, nil
}

type nopSeekCloser struct{ *bytes.Reader }

func (nopSeekCloser) Close() error { return nil }

func (s *MemoryUploadStore) Open(ctx context.Context, filename string) (io.ReadSeekCloser, time.Time, error) {
	s.mu.RLock()
	f, ok := s.files[filename]
	s.mu.RUnlock()
	if !ok {
		return nil, time.Time{}, ErrUploadNotFound
	}
	return nopSeekCloser{bytes.NewReader(f.data)}, f.savedAt, nil
}

func (s *MemoryUploadStore) Delete(ctx context.Context, filename string) error {
	s.mu.Lock()
	delete(s.files, filename)
	s.mu.Unlock()
	return nil
}
