package listquery

import "fmt"

type State int

const (
	Idle State = iota
	Loading
	Loaded
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Error:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Snapshot is an immutable copy of a controller's state.
type Snapshot[V any] struct {
	Query           Query
	SearchInput     string
	State           State
	Items           []V
	Count           int
	Next            string
	Previous        string
	Err             error
	Message         string
	FiltersExpanded bool
	RequestID       uint64

	version uint64
}

func (s Snapshot[V]) HasNext() bool { return s.Next != "" }

// HasPrevious is true when a previous cursor exists or the page number is
// past the first page.
func (s Snapshot[V]) HasPrevious() bool {
	return s.Previous != "" || (s.Query.Cursor == "" && s.Query.Page > 1)
}

func (s Snapshot[V]) clone() Snapshot[V] {
	out := s
	out.Query = s.Query.clone()
	out.Items = append([]V(nil), s.Items...)
	return out
}
