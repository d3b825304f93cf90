// Package domain holds the viewing history model: one record per run of the
// greeting, written after the program exits.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Viewing is one finished run of the greeting.
type Viewing struct {
	id        int64
	guid      string
	variant   string
	furthest  string
	petals    int
	clicks    int
	completed bool
	startedAt time.Time
	endedAt   time.Time
}

// Outcome is what the app reports about a run when it ends.
type Outcome struct {
	Variant   string
	Furthest  string
	Petals    int
	Clicks    int
	Completed bool
	StartedAt time.Time
	EndedAt   time.Time
}

// NewViewing creates an unsaved viewing with a fresh GUID. An end time before
// the start is clamped to the start.
func NewViewing(o Outcome) *Viewing {
	ended := o.EndedAt
	if ended.Before(o.StartedAt) {
		ended = o.StartedAt
	}
	return &Viewing{
		guid:      uuid.NewString(),
		variant:   o.Variant,
		furthest:  o.Furthest,
		petals:    max(o.Petals, 0),
		clicks:    max(o.Clicks, 0),
		completed: o.Completed,
		startedAt: o.StartedAt,
		endedAt:   ended,
	}
}

// ReconstituteViewing rebuilds a viewing read back from storage.
func ReconstituteViewing(id int64, guid string, o Outcome) *Viewing {
	return &Viewing{
		id:        id,
		guid:      guid,
		variant:   o.Variant,
		furthest:  o.Furthest,
		petals:    o.Petals,
		clicks:    o.Clicks,
		completed: o.Completed,
		startedAt: o.StartedAt,
		endedAt:   o.EndedAt,
	}
}

func (v *Viewing) ID() int64            { return v.id }
func (v *Viewing) GUID() string         { return v.guid }
func (v *Viewing) Variant() string      { return v.variant }
func (v *Viewing) Furthest() string     { return v.furthest }
func (v *Viewing) Petals() int          { return v.petals }
func (v *Viewing) Clicks() int          { return v.clicks }
func (v *Viewing) Completed() bool      { return v.completed }
func (v *Viewing) StartedAt() time.Time { return v.startedAt }
func (v *Viewing) EndedAt() time.Time   { return v.endedAt }

// Duration is how long the viewer stayed.
func (v *Viewing) Duration() time.Duration {
	return v.endedAt.Sub(v.startedAt)
}

// SetID is called by the repository after the first insert.
func (v *Viewing) SetID(id int64) {
	v.id = id
}
