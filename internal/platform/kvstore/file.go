package kvstore

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// File persists every entry in one JSON object on local disk. Each mutation
// rewrites the document through a temp file and rename, so readers of the
// path never observe a partial write and a failed write leaves the previous
// contents (and the in-memory view) untouched.
type File struct {
	mu      sync.RWMutex
	path    string
	entries map[string]string
}

var (
	_ Store   = (*File)(nil)
	_ Batcher = (*File)(nil)
)

// OpenFile loads path, creating parent directories when needed. A missing or
// empty file yields an empty store. Relative paths are resolved against the
// working directory at open time.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, crerr.New("kvstore: file path is required")
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "resolve storage path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, crerr.Wrapf(err, "create storage directory for %q", path)
	}

	entries := make(map[string]string)
	raw, err := os.ReadFile(path)
	switch {
	case crerr.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, crerr.Wrapf(err, "read storage file %q", path)
	case len(bytes.TrimSpace(raw)) > 0:
		if err := sonic.Unmarshal(raw, &entries); err != nil {
			return nil, crerr.Wrapf(err, "decode storage file %q", path)
		}
	}

	return &File{path: path, entries: entries}, nil
}

// Path is the absolute location of the backing file.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if key == "" {
		return "", false, ErrEmptyKey
	}

	f.mu.RLock()
	v, ok := f.entries[key]
	f.mu.RUnlock()

	return v, ok, nil
}

func (f *File) Set(ctx context.Context, key, value string) error {
	return f.Apply(ctx, SetOp(key, value))
}

func (f *File) Remove(ctx context.Context, key string) error {
	return f.Apply(ctx, RemoveOp(key))
}

func (f *File) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.RLock()
	out := make([]string, 0, len(f.entries))
	for k := range f.entries {
		out = append(out, k)
	}
	f.mu.RUnlock()

	sort.Strings(out)
	return out, nil
}

func (f *File) Apply(ctx context.Context, ops ...Op) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateOps(ops); err != nil {
		return err
	}
	if len(ops) == 0 {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	next := make(map[string]string, len(f.entries)+len(ops))
	for k, v := range f.entries {
		next[k] = v
	}
	for _, op := range ops {
		if op.Delete {
			delete(next, op.Key)
			continue
		}
		next[op.Key] = op.Value
	}

	if err := f.persist(next); err != nil {
		return err
	}
	f.entries = next

	return nil
}

func (f *File) persist(entries map[string]string) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigStd.NewEncoder(buf).Encode(entries); err != nil {
		return crerr.Wrap(err, "encode storage document")
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return crerr.Wrapf(err, "create temp file for %q", f.path)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(buf.B); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "write temp file %q", tmpName)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "sync temp file %q", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrapf(err, "close temp file %q", tmpName)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return crerr.Wrapf(err, "replace storage file %q", f.path)
	}
	committed = true

	return nil
}
