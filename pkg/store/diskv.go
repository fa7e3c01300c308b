package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const (
	stateDir  = "state"
	stateExt  = ".json"
	tmpSubdir = ".tmp"
)

// NewDiskv creates a Persistence that keeps one file per key under basePath.
// Writes go through a temp dir and a rename, so a crash never leaves a torn
// state file behind.
func NewDiskv(basePath string) (Persistence, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tmpSubdir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Read(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %q: %w", key, err)
	}
	return val, nil
}

func (p *persistence) Write(key string, val []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := p.d.Write(key, val); err != nil {
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	return nil
}

func (p *persistence) Erase(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := p.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %q: %w", key, err)
	}
	return nil
}

func (p *persistence) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, ctx.Err()
}

func (p *persistence) Describe() string {
	return fmt.Sprintf("diskv at %s", p.basePath)
}

func (p *persistence) Close() error {
	return nil
}

// keyToPathTransform keeps every key in the state dir; the file name is the
// url-safe base64 of the key so any namespace is a valid file name.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{stateDir},
		FileName: base64.RawURLEncoding.EncodeToString([]byte(key)) + stateExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) != 1 || pathKey.Path[0] != stateDir {
		return ""
	}
	name := strings.TrimSuffix(pathKey.FileName, stateExt)
	key, err := base64.RawURLEncoding.DecodeString(name)
	if err != nil {
		return ""
	}
	return string(key)
}
