package driven

// IDGenerator mints identifiers for new records.
type IDGenerator interface {
	// Next returns an id that is not in existing. existing is ordered by
	// insertion.
	Next(existing []int64) (int64, error)
}
