// Package registry persists named custom alphabets in LevelDB.
package registry

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"github.com/treeforest/basen/alphabet"
	log "github.com/treeforest/logger"
)

const (
	dbName     = "ALPHABETS"    // 数据库名
	namePrefix = "__alphabet__" // 名称键前缀

	expectedNames = 10000
	falsePositive = 0.001
)

var (
	ErrNotFound    = errors.New("alphabet not found")
	ErrInvalidName = errors.New("alphabet name must not be empty")
)

func IsNotExistDB(path string) bool {
	_, err := os.Stat(filepath.Join(path, dbName))
	return os.IsNotExist(err)
}

// Registry 字母表注册表
type Registry struct {
	db    *leveldb.DB
	cache *alphabet.Cache

	mu     sync.Mutex
	filter *bloom.BloomFilter // 已注册名称的 Bloom 过滤器
}

// Open opens or creates the registry under path. A nil cache selects
// alphabet.Default.
func Open(path string, cache *alphabet.Cache) (*Registry, error) {
	if cache == nil {
		cache = alphabet.Default
	}
	log.Debug("registry path:", filepath.Join(path, dbName))
	db, err := leveldb.OpenFile(filepath.Join(path, dbName), &opt.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open leveldb [%s]", dbName)
	}

	r := &Registry{
		db:     db,
		cache:  cache,
		filter: bloom.NewWithEstimates(expectedNames, falsePositive),
	}
	if err = r.loadFilter(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Registry) loadFilter() error {
	iter := r.db.NewIterator(util.BytesPrefix([]byte(namePrefix)), nil)
	defer iter.Release()
	n := 0
	for iter.Next() {
		r.filter.Add(iter.Key()[len(namePrefix):])
		n++
	}
	log.Debugf("registry loaded %d names", n)
	return errors.Wrap(iter.Error(), "scan registry")
}

func (r *Registry) Close() error {
	return r.db.Close()
}

func key(name string) []byte {
	return []byte(namePrefix + name)
}

// Put stores symbols under name, replacing any previous entry. symbols must
// form a valid alphabet.
func (r *Registry) Put(name, symbols string) error {
	if name == "" {
		return ErrInvalidName
	}
	if _, err := r.cache.Get(symbols); err != nil {
		return err
	}

	wo := &opt.WriteOptions{Sync: true}
	if err := r.db.Put(key(name), []byte(symbols), wo); err != nil {
		return errors.Wrapf(err, "put alphabet %q", name)
	}

	r.mu.Lock()
	r.filter.AddString(name)
	r.mu.Unlock()
	return nil
}

// Get returns the symbol sequence registered under name.
func (r *Registry) Get(name string) (string, error) {
	r.mu.Lock()
	maybe := r.filter.TestString(name)
	r.mu.Unlock()
	if !maybe {
		return "", errors.Wrapf(ErrNotFound, "%q", name)
	}

	value, err := r.db.Get(key(name), nil)
	if err == leveldb.ErrNotFound {
		return "", errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return "", errors.Wrapf(err, "get alphabet %q", name)
	}
	return string(value), nil
}

// Alphabet resolves name to a cached alphabet.
func (r *Registry) Alphabet(name string) (*alphabet.Alphabet, error) {
	symbols, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return r.cache.Get(symbols)
}

// Delete removes name. Bloom filters cannot forget, so later misses for
// name fall through to LevelDB.
func (r *Registry) Delete(name string) error {
	has, err := r.db.Has(key(name), nil)
	if err != nil {
		return errors.Wrapf(err, "lookup alphabet %q", name)
	}
	if !has {
		return errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err = r.db.Delete(key(name), &opt.WriteOptions{Sync: true}); err != nil {
		return errors.Wrapf(err, "delete alphabet %q", name)
	}
	return nil
}

// Names lists registered names in key order.
func (r *Registry) Names() ([]string, error) {
	iter := r.db.NewIterator(util.BytesPrefix([]byte(namePrefix)), nil)
	defer iter.Release()
	names := make([]string, 0)
	for iter.Next() {
		names = append(names, string(iter.Key()[len(namePrefix):]))
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "scan registry")
	}
	return names, nil
}
