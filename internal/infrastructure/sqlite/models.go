package sqlite

import (
	"time"

	"github.com/zjrosen/valentine/internal/viewings/domain"
)

// viewingRow mirrors the viewings table. Times are Unix milliseconds.
type viewingRow struct {
	ID        int64
	GUID      string
	Variant   string
	Furthest  string
	Petals    int
	Clicks    int
	Completed bool
	StartedAt int64
	EndedAt   int64
}

const viewingColumns = `id, guid, variant, furthest, petals, clicks, completed, started_at, ended_at`

func toRow(v *domain.Viewing) viewingRow {
	return viewingRow{
		ID:        v.ID(),
		GUID:      v.GUID(),
		Variant:   v.Variant(),
		Furthest:  v.Furthest(),
		Petals:    v.Petals(),
		Clicks:    v.Clicks(),
		Completed: v.Completed(),
		StartedAt: v.StartedAt().UnixMilli(),
		EndedAt:   v.EndedAt().UnixMilli(),
	}
}

func (r *viewingRow) dest() []any {
	return []any{&r.ID, &r.GUID, &r.Variant, &r.Furthest, &r.Petals, &r.Clicks, &r.Completed, &r.StartedAt, &r.EndedAt}
}

func (r viewingRow) toDomain() *domain.Viewing {
	return domain.ReconstituteViewing(r.ID, r.GUID, domain.Outcome{
		Variant:   r.Variant,
		Furthest:  r.Furthest,
		Petals:    r.Petals,
		Clicks:    r.Clicks,
		Completed: r.Completed,
		StartedAt: time.UnixMilli(r.StartedAt),
		EndedAt:   time.UnixMilli(r.EndedAt),
	})
}
