package domain

// VideoRecord is one playlist item as returned by the catalog provider.
// Records are immutable after creation and scoped to a single run.
type VideoRecord struct {
	ID              string
	Title           string
	DurationSeconds int64
	Available       bool
}
