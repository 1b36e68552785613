package save

import (
	"bytes"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
	"github.com/syndtr/goleveldb/leveldb"
)

// Store is the durable single-slot save medium.
type Store interface {
	Get() (data []byte, ok bool, err error)
	Put(data []byte) error
	Close() error
}

var saveKey = []byte("save/slot0")

// LevelStore keeps the save blob lz4-compressed in a leveldb at path.
type LevelStore struct {
	db *leveldb.DB
}

func OpenLevelStore(path string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &LevelStore{db: db}, nil
}

func (s *LevelStore) Get() ([]byte, bool, error) {
	raw, err := s.db.Get(saveKey, nil)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	zr := lz4.NewReader(bytes.NewReader(raw))
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *LevelStore) Put(data []byte) error {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return s.db.Put(saveKey, buf.Bytes(), nil)
}

func (s *LevelStore) Close() error {
	return s.db.Close()
}

// MemoryStore backs tests and the storage-unavailable fallback.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
	ok   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ok {
		return nil, false, nil
	}
	return append([]byte(nil), s.data...), true, nil
}

func (s *MemoryStore) Put(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.ok = true
	return nil
}

func (s *MemoryStore) Close() error { return nil }
