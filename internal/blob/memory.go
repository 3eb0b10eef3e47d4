package blob

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"
)

// Memory is an in-process Store, mostly for tests.
type Memory struct {
	mu   sync.RWMutex
	objs map[string][]byte
}

func NewMemory() *Memory { return &Memory{objs: make(map[string][]byte)} }

func (s *Memory) Driver() Driver { return DriverMemory }

func (s *Memory) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return Info{}, err
	}
	s.mu.Lock()
	s.objs[key] = b
	s.mu.Unlock()
	return Info{Key: key, Size: int64(len(b)), ContentType: opts.ContentType, LastModified: time.Now().UTC(), Location: "memory://" + key}, nil
}

// Bytes returns a copy of the object stored at key.
func (s *Memory) Bytes(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.objs[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), b...), true
}

// Keys lists stored keys in lexical order.
func (s *Memory) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.objs))
	for k := range s.objs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
