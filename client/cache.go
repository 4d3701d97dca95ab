package client

import (
	"encoding/json"
	"fmt"
	"sync"
)

// cache is a keyed response cache. Entries never expire; consistency comes
// from mutations invalidating exactly the keys they affect.
type cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func newCache() *cache {
	return &cache{entries: map[string][]byte{}}
}

// get decodes the cached entry for key into out. Each read decodes a fresh
// copy so callers cannot mutate the cached state.
func (c *cache) get(key string, out any) bool {
	c.mu.RLock()
	raw, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (c *cache) set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.mu.Lock()
	c.entries[key] = raw
	c.mu.Unlock()
}

func (c *cache) invalidate(keys ...string) {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.mu.Unlock()
}

func (c *cache) clear() {
	c.mu.Lock()
	c.entries = map[string][]byte{}
	c.mu.Unlock()
}

// Cache key layout. Board and list keys for a project are distinct so both
// views invalidate together.
func keyUserAll() string { return "user:all" }

func keyUser(id uint) string { return fmt.Sprintf("user:%d", id) }

func keyTeamAll() string { return "team:all" }

func keyTeam(id uint) string { return fmt.Sprintf("team:%d", id) }

func keyTeamMembers(teamID uint) string { return fmt.Sprintf("member:team:%d", teamID) }

func keyProjectAll() string { return "project:all" }

func keyProject(id uint) string { return fmt.Sprintf("project:%d", id) }

func keyProjectTasks(id uint) string { return fmt.Sprintf("project:%d:tasks", id) }

func keyProjectBoard(id uint) string { return fmt.Sprintf("project:%d:board", id) }

func keyTaskAll() string { return "task:all" }

func keyTask(id uint) string { return fmt.Sprintf("task:%d", id) }
func keyTaskComments(taskID uint) string {
	return fmt.Sprintf("comment:task:%d", taskID)
}
