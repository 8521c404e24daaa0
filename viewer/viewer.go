// Package viewer models the presentation state the web client drives when
// a feed card is selected: closed, a single fullscreen photo, or a letter
// carousel that wraps in both directions.
package viewer

type Mode string

const (
	ModeClosed Mode = "closed"
	ModePhoto  Mode = "photo"
	ModeLetter Mode = "letter"
)

// State is the current viewer mode plus everything needed to render it.
// Pages holds the letter image sequence in display order; Index is the
// page currently shown.
type State struct {
	Mode  Mode     `json:"mode"`
	URL   string   `json:"url,omitempty"`
	Date  string   `json:"date,omitempty"`
	Pages []string `json:"pages,omitempty"`
	Index int      `json:"index"`
}

// Closed is the initial state.
func Closed() State {
	return State{Mode: ModeClosed}
}

// OpenPhoto enters the single-photo view.
func OpenPhoto(url, date string) State {
	return State{Mode: ModePhoto, URL: url, Date: date}
}

// OpenLetter enters the carousel at the first page.
func OpenLetter(pages []string, date string) State {
	return State{Mode: ModeLetter, Pages: pages, Date: date, Index: 0}
}

// Next advances the carousel, wrapping past the last page. Ignored outside
// the letter view.
func (s State) Next() State {
	if s.Mode != ModeLetter || len(s.Pages) == 0 {
		return s
	}
	s.Index = (s.Index + 1) % len(s.Pages)
	return s
}

// Prev steps the carousel backwards, wrapping before the first page.
func (s State) Prev() State {
	if s.Mode != ModeLetter || len(s.Pages) == 0 {
		return s
	}
	s.Index = (s.Index - 1 + len(s.Pages)) % len(s.Pages)
	return s
}

// Close returns to the initial state from anywhere; a backdrop click and
// the explicit close control both land here.
func (s State) Close() State {
	return Closed()
}
