package apinotes

import "strings"

// SelectorRef is a non-owning reference to a method selector: the ordered
// name pieces plus the number of colon-terminated pieces, which equals the
// method's argument count. A selector taking no arguments has NumPieces == 0
// and exactly one bare piece.
//
// SelectorRef borrows the caller's strings to keep lookups allocation-free.
// The pieces must remain valid for the duration of the call the reference is
// passed to; do not retain one.
type SelectorRef struct {
	NumPieces int
	Pieces    []string
}

// String renders the selector in its conventional spelling: the bare name
// for zero-argument selectors, otherwise every piece followed by a colon.
func (s SelectorRef) String() string {
	if len(s.Pieces) == 0 {
		return ""
	}
	if s.NumPieces == 0 {
		return s.Pieces[0]
	}
	var sb strings.Builder
	for _, piece := range s.Pieces {
		sb.WriteString(piece)
		sb.WriteByte(':')
	}
	return sb.String()
}
