// internal/chunkstore/store.go
package chunkstore

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// Entry is what the index remembers about a chunk digest
type Entry struct {
	Size     uint64 // Chunk length in bytes
	RefCount uint64 // Times the digest was seen while cached
}

// indexEntry tracks chunk info with LRU metadata
type indexEntry struct {
	Entry
	lruNode *list.Element
}

// Index is a thread-safe set of chunk digests used to measure how much of
// the input repeats. With a capacity it keeps only the most recently seen
// digests, so a repeat of an evicted chunk counts as unique: duplicate
// figures are then a lower bound.
type Index struct {
	mu        sync.Mutex
	chunks    map[[32]byte]*indexEntry
	lruList   *list.List // Front = most recently seen
	maxChunks int        // 0 = unlimited

	// Statistics
	totalChunks     atomic.Uint64
	uniqueChunks    atomic.Uint64
	duplicateChunks atomic.Uint64
	totalBytes      atomic.Uint64
	duplicateBytes  atomic.Uint64
	evictions       atomic.Uint64
}

// NewIndex creates an index with unlimited capacity
func NewIndex() *Index {
	return NewIndexWithCapacity(0)
}

// NewIndexWithCapacity creates an index holding at most maxChunks digests
// (0 = unlimited)
func NewIndexWithCapacity(maxChunks int) *Index {
	if maxChunks < 0 {
		maxChunks = 0
	}
	return &Index{
		chunks:    make(map[[32]byte]*indexEntry),
		lruList:   list.New(),
		maxChunks: maxChunks,
	}
}

// Add records one occurrence of a chunk. It returns true when the digest was
// not in the index.
func (s *Index) Add(hash [32]byte, size uint64) bool {
	s.totalChunks.Add(1)
	s.totalBytes.Add(size)

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, exists := s.chunks[hash]; exists {
		entry.RefCount++
		s.lruList.MoveToFront(entry.lruNode)
		s.duplicateChunks.Add(1)
		s.duplicateBytes.Add(size)
		return false
	}

	if s.maxChunks > 0 && len(s.chunks) >= s.maxChunks {
		s.evictLRU()
	}

	s.chunks[hash] = &indexEntry{
		Entry:   Entry{Size: size, RefCount: 1},
		lruNode: s.lruList.PushFront(hash),
	}
	s.uniqueChunks.Add(1)
	return true
}

// evictLRU removes the least recently seen digest.
// Must be called with the lock held.
func (s *Index) evictLRU() {
	back := s.lruList.Back()
	if back == nil {
		return
	}

	delete(s.chunks, back.Value.([32]byte))
	s.lruList.Remove(back)
	s.evictions.Add(1)
}

// Lookup returns the entry for a digest without touching LRU order
func (s *Index) Lookup(hash [32]byte) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, exists := s.chunks[hash]; exists {
		return entry.Entry, true
	}
	return Entry{}, false
}

// Count returns the number of digests currently held
func (s *Index) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chunks)
}

// Stats returns duplicate statistics
func (s *Index) Stats() Stats {
	return Stats{
		TotalChunks:     s.totalChunks.Load(),
		UniqueChunks:    s.uniqueChunks.Load(),
		DuplicateChunks: s.duplicateChunks.Load(),
		TotalBytes:      s.totalBytes.Load(),
		DuplicateBytes:  s.duplicateBytes.Load(),
		Evictions:       s.evictions.Load(),
	}
}

// Stats contains duplicate statistics
type Stats struct {
	TotalChunks     uint64 // Chunks recorded
	UniqueChunks    uint64 // Chunks whose digest was new
	DuplicateChunks uint64 // Chunks whose digest was already indexed
	TotalBytes      uint64 // Bytes recorded
	DuplicateBytes  uint64 // Bytes in duplicate chunks
	Evictions       uint64 // Digests dropped due to capacity
}

// DedupRatio returns the share of duplicate chunks as a percentage
func (s Stats) DedupRatio() float64 {
	if s.TotalChunks == 0 {
		return 0
	}
	return float64(s.DuplicateChunks) / float64(s.TotalChunks) * 100
}

// SavedRatio returns the share of duplicate bytes as a percentage
func (s Stats) SavedRatio() float64 {
	if s.TotalBytes == 0 {
		return 0
	}
	return float64(s.DuplicateBytes) / float64(s.TotalBytes) * 100
}
