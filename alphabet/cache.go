package alphabet

import "sync"

// Cache 按符号序列缓存字母表，条目不会被淘汰
type Cache struct {
	mu        sync.RWMutex
	alphabets map[string]*Alphabet
}

func NewCache() *Cache {
	return &Cache{alphabets: make(map[string]*Alphabet)}
}

// Default backs FromString and Predefined.
var Default = NewCache()

// FromString returns the alphabet for key from the default cache.
func FromString(key string) (*Alphabet, error) {
	return Default.Get(key)
}

// Predefined returns the predefined alphabet for radix from the default cache.
func Predefined(radix int) (*Alphabet, error) {
	return Default.Predefined(radix)
}

// Get returns the cached alphabet for key, building it on first use.
// Concurrent callers with the same key always receive the same instance.
func (c *Cache) Get(key string) (*Alphabet, error) {
	c.mu.RLock()
	a, ok := c.alphabets[key]
	c.mu.RUnlock()
	if ok {
		return a, nil
	}

	a, err := build(key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.alphabets[key]; ok {
		return existing, nil
	}
	c.alphabets[key] = a
	return a, nil
}

func (c *Cache) Predefined(radix int) (*Alphabet, error) {
	key, ok := Table(radix)
	if !ok {
		return nil, &UnknownRadixError{Radix: radix}
	}
	return c.Get(key)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.alphabets)
}

// Reset drops every cached alphabet.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.alphabets = make(map[string]*Alphabet)
	c.mu.Unlock()
}
