package domain

// ListFilter narrows a history listing.
type ListFilter struct {
	Variant       string // empty matches all
	CompletedOnly bool
	Limit         int // 0 means no limit
}

// Repository stores viewings.
type Repository interface {
	// Save inserts a new viewing and assigns its ID. Viewings are never
	// updated after they are recorded.
	Save(v *Viewing) error
	// FindByGUID returns ViewingNotFoundError when nothing matches.
	FindByGUID(guid string) (*Viewing, error)
	// List returns viewings newest first.
	List(filter ListFilter) ([]*Viewing, error)
	Close() error
}
