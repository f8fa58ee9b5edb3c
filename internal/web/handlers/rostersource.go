// ABOUTME: Cached access to the roster file for board and sessions requests
// ABOUTME: Reparses the YAML only when the file's size or modification time changes

package handlers

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/markalston/campboard/internal/cache"
	"github.com/markalston/campboard/internal/roster"
)

// rosterVersion identifies one revision of the roster file on disk
type rosterVersion struct {
	modTime int64
	size    int64
}

type rosterSource struct {
	path  string
	cache *cache.Cache[rosterVersion, *roster.Roster]
	loads int

	mu   sync.Mutex
	last rosterVersion
}

func newRosterSource(path string, ttl time.Duration) *rosterSource {
	return &rosterSource{
		path:  path,
		cache: cache.New[rosterVersion, *roster.Roster](ttl),
	}
}

// Load returns the parsed roster, reusing the previous parse while the file
// is unchanged. Returned rosters are shared and must not be modified.
func (s *rosterSource) Load() (*roster.Roster, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("stat roster %s: %w", s.path, err)
	}
	v := rosterVersion{modTime: info.ModTime().UnixNano(), size: info.Size()}

	s.mu.Lock()
	if v != s.last {
		s.cache.Clear(s.last)
		s.last = v
	}
	s.mu.Unlock()

	return s.cache.GetOrCompute(v, func() (*roster.Roster, error) {
		s.mu.Lock()
		s.loads++
		s.mu.Unlock()
		return roster.Load(s.path)
	})
}

// Loads returns how many times the file was actually parsed
func (s *rosterSource) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

func (s *rosterSource) Close() {
	s.cache.Close()
}
