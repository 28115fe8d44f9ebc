// Copyright (c) 2026, The Solidgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diskstore implements the local disk cache persistence layer:
// a hash-sharded mirror of GeometryCache/ExactCache entries, rooted at
// a platform-local cache directory.
package diskstore

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"cogentcore.org/core/base/datasize"
	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Envelope is the on-disk serialized form of one cache entry: the
// on-disk envelope for one cache entry, realized
// with encoding/gob.
type Envelope struct {
	Kind    uint8
	Payload []byte
	Message string
}

// Prefix distinguishes the two cache kinds sharing one directory tree.
type Prefix string

const (
	PrefixExact    Prefix = "c"
	PrefixGeometry Prefix = "g"
)

const (
	defaultHighWater = 10 << 20
	defaultLowWater  = 8 << 20
)

// Store is the local disk cache. It is safe for concurrent read access
// (Get) but writes are expected to come from one task at a time.
type Store struct {
	root      string
	highWater datasize.Size
	lowWater  datasize.Size

	mu      sync.Mutex
	trimmed map[string]bool // best-effort de-dup of trims triggered by the watcher

	watcher *fsnotify.Watcher
}

// DefaultRoot resolves the platform-local cache directory root: a
// user's home directory joined with a tool-specific suffix.
func DefaultRoot() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".solidgeom", "cache"), nil
}

// Open returns a Store rooted at root, creating it if necessary, with
// the default 10 MB / 8 MB high/low watermarks. Passing an empty root
// resolves DefaultRoot().
func Open(root string) (*Store, error) {
	if root == "" {
		r, err := DefaultRoot()
		if err != nil {
			return nil, err
		}
		root = r
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	s := &Store{
		root:      root,
		highWater: datasize.Size(defaultHighWater),
		lowWater:  datasize.Size(defaultLowWater),
		trimmed:   map[string]bool{},
	}
	return s, nil
}

// SetWatermarks overrides the default high/low water trimming
// thresholds.
func (s *Store) SetWatermarks(high, low datasize.Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highWater, s.lowWater = high, low
}

func (s *Store) pathFor(prefix Prefix, key string) string {
	sum := sha256.Sum256([]byte(key))
	h := hex.EncodeToString(sum[:])
	dir := filepath.Join(s.root, string(prefix)+h[:2])
	return filepath.Join(dir, h[2:])
}

// Put writes env under key atomically: serialize to a uniquely-named
// temp file, then rename into place. A non-nil error is
// a CacheIO condition — callers should log it as a warning and continue
// with the in-memory path, never treat it as fatal.
func (s *Store) Put(prefix Prefix, key string, env Envelope) error {
	path := s.pathFor(prefix, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // no-op once renamed

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(env); err != nil {
		errors.Log(tmp.Close())
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		errors.Log(tmp.Close())
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	s.maybeTrim()
	return nil
}

// Get reads and deserializes the entry for key, if present.
func (s *Store) Get(prefix Prefix, key string) (Envelope, bool, error) {
	path := s.pathFor(prefix, key)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Envelope{}, false, nil
	}
	if err != nil {
		return Envelope{}, false, err
	}
	var env Envelope
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		return Envelope{}, false, err
	}
	return env, true, nil
}

type fileInfo struct {
	path  string
	size  int64
	mtime int64
}

// maybeTrim walks the tree and, if total size exceeds highWater, evicts
// entries oldest-mtime-first until size is at or below lowWater.
func (s *Store) maybeTrim() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var files []fileInfo
	var total int64
	_ = filepath.Walk(s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		files = append(files, fileInfo{path: path, size: info.Size(), mtime: info.ModTime().UnixNano()})
		total += info.Size()
		return nil
	})
	if total <= int64(s.highWater) {
		return
	}
	sort.Slice(files, func(i, j int) bool { return files[i].mtime < files[j].mtime })
	for _, f := range files {
		if total <= int64(s.lowWater) {
			break
		}
		if err := os.Remove(f.path); err != nil {
			continue
		}
		total -= f.size
	}
}

// WatchForExternalChanges starts an fsnotify watch on the cache root.
// Its events are drained and otherwise ignored: the Store keeps no size
// estimate, since every Put's maybeTrim re-walks the directory. It is
// advisory only: failure to start the watcher
// is a CacheIO warning, never fatal, and the returned Store remains
// fully usable without it.
func (s *Store) WatchForExternalChanges() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(s.root); err != nil {
		errors.Log(w.Close())
		return err
	}
	s.watcher = w
	go func() {
		for range w.Events {
			// Presence of external writes/removals just means our
			// in-memory watermark bookkeeping may be stale; the next
			// Put's maybeTrim will re-walk the directory from scratch.
		}
	}()
	return nil
}

// Close releases the fsnotify watcher, if one was started.
func (s *Store) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

// Root returns the resolved cache directory root.
func (s *Store) Root() string { return s.root }
