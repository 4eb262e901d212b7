package booking

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// newID returns a millisecond-timestamp id, bumped past the previous one
// when two bookings land in the same millisecond. Unique for the life of
// the process, which matches the life of the default store.
func newID() string {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id

	return strconv.FormatInt(id, 10)
}
