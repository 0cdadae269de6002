// Package zones resolves IANA time zone identifiers into *time.Location values
// and keeps the loaded locations in memory, so parsing thousands of slot rows
// that share a handful of zones reads the zone database once per zone.
package zones

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maypok86/otter/v2"
)

// ErrEmptyName is returned when no zone identifier is given. time.LoadLocation
// silently maps the empty string to UTC, which would hide missing data.
var ErrEmptyName = errors.New("empty time zone name")

// ErrLocalZone is returned for the "Local" pseudo-zone whose meaning depends
// on the host running the process.
var ErrLocalZone = errors.New("host-local time zone is not allowed")

// defaultMaximumSize bounds the number of cached locations. There are fewer than
// 600 IANA identifiers, so the bound is never hit with real data.
const defaultMaximumSize = 1024

// Cache is a concurrency safe cache of loaded locations.
type Cache struct {
	cache *otter.Cache[string, *time.Location]
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		cache: otter.Must(&otter.Options[string, *time.Location]{
			MaximumSize: defaultMaximumSize,
		}),
	}
}

// Load returns the location for the given IANA identifier.
func (c *Cache) Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	switch name {
	case "":
		return nil, ErrEmptyName
	case "Local":
		return nil, ErrLocalZone
	}

	if loc, ok := c.cache.GetIfPresent(name); ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("could not load time zone %q: %w", name, err)
	}
	c.cache.Set(name, loc)

	return loc, nil
}

// Size returns the number of cached locations.
func (c *Cache) Size() int {
	return c.cache.EstimatedSize()
}

var defaultCache = New() //nolint: gochecknoglobals

// Load resolves name through the process-wide cache.
func Load(name string) (*time.Location, error) {
	return defaultCache.Load(name)
}

// Default returns the process-wide cache.
func Default() *Cache {
	return defaultCache
}
