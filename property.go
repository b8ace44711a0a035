package apinotes

// PropertyAnnotation records the annotations for a single property. Today
// that is one fact: the property's audited nullability, if any.
//
// The zero value is unaudited. PropertyAnnotation is comparable; ==
// distinguishes an unaudited property from every audited state.
type PropertyAnnotation struct {
	audited bool
	kind    Nullability
}

// Nullability returns the property's audited nullability and whether an
// audit recorded one. Unaudited properties report Unknown and false.
func (p PropertyAnnotation) Nullability() (Nullability, bool) {
	if !p.audited {
		return Unknown, false
	}
	return p.kind, true
}

// SetNullability marks the property audited with the given nullability,
// replacing any prior value. It panics if kind is not a declared
// Nullability state.
func (p *PropertyAnnotation) SetNullability(kind Nullability) {
	if !kind.Valid() {
		panic("apinotes: invalid nullability")
	}
	p.audited = true
	p.kind = kind
}
