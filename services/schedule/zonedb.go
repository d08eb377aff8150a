package schedule

import (
	"fmt"
	"sync"
	"time"
)

// ZoneDB is the one narrow seam to the host timezone database: project an
// absolute instant into the wall-clock fields and abbreviation a zone
// shows at that instant. Keeping it this small lets the conversion loop
// run against a fake in tests.
type ZoneDB interface {
	Project(t time.Time, zone string) (CivilDateTime, string, error)
}

// LocationZoneDB resolves zones through the Go tzdata and caches the
// loaded locations. Safe for concurrent use.
type LocationZoneDB struct {
	mu   sync.RWMutex
	locs map[string]*time.Location
}

func NewLocationZoneDB() *LocationZoneDB {
	return &LocationZoneDB{locs: make(map[string]*time.Location)}
}

// Location returns the cached *time.Location for zone, loading it on
// first use.
func (db *LocationZoneDB) Location(zone string) (*time.Location, error) {
	db.mu.RLock()
	loc, ok := db.locs[zone]
	db.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load zone %q: %w", zone, err)
	}

	db.mu.Lock()
	db.locs[zone] = loc
	db.mu.Unlock()
	return loc, nil
}

func (db *LocationZoneDB) Project(t time.Time, zone string) (CivilDateTime, string, error) {
	loc, err := db.Location(zone)
	if err != nil {
		return CivilDateTime{}, "", err
	}
	local := t.In(loc)
	abbr, _ := local.Zone()
	return CivilDateTime{
		Year:   local.Year(),
		Month:  int(local.Month()),
		Day:    local.Day(),
		Hour:   local.Hour(),
		Minute: local.Minute(),
		Second: local.Second(),
	}, abbr, nil
}
