package apinotes

// ClassAnnotation records the annotations that apply to a class as a whole:
// an optional default nullability assumed for members that carry no
// annotation of their own.
//
// The zero value declares no default. ClassAnnotation is comparable; ==
// distinguishes "no default" from every declared default.
type ClassAnnotation struct {
	hasDefault bool
	kind       Nullability
}

// DefaultNullability returns the class-wide default nullability and whether
// one was declared. When absent, the returned kind is Unknown.
func (c ClassAnnotation) DefaultNullability() (Nullability, bool) {
	if !c.hasDefault {
		return Unknown, false
	}
	return c.kind, true
}

// SetDefaultNullability declares the class-wide default nullability,
// replacing any prior value. It panics if kind is not a declared
// Nullability state.
func (c *ClassAnnotation) SetDefaultNullability(kind Nullability) {
	if !kind.Valid() {
		panic("apinotes: invalid nullability")
	}
	c.hasDefault = true
	c.kind = kind
}
