package overlay

// Config names every part of the markup contract the handlers rely on.
type Config struct {
	// OverlayID is the id of the full-screen navigation overlay.
	OverlayID string

	// FilterSelector selects the query-filter element. Only the first
	// match is touched.
	FilterSelector string

	// NLQClass and DefaultClass are the two mutually exclusive filter styles.
	NLQClass     string
	DefaultClass string

	// OpenWidth and ClosedWidth are the inline widths of the overlay.
	OpenWidth   string
	ClosedWidth string
}

// DefaultConfig returns the contract used by www/index.html.
func DefaultConfig() Config {
	return Config{
		OverlayID:      "myNav",
		FilterSelector: ".filter-query",
		NLQClass:       "nlq-styling",
		DefaultClass:   "default-styling",
		OpenWidth:      "100%",
		ClosedWidth:    "0%",
	}
}
