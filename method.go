package apinotes

// Per-position nullability is packed into a single 64-bit payload word, one
// field of nullabilityBits per signature position. Position 0 is the return
// type and position k is parameter k-1.
const (
	// MaxPositions is the number of signature positions a method record
	// can describe: the payload word divided by the field width.
	MaxPositions = 64 / nullabilityBits

	nullabilityBits = 2
	nullabilityMask = 1<<nullabilityBits - 1
)

// MethodAnnotation is the composite record for a single method: initializer
// disposition, availability and the audited nullability of every signature
// position.
//
// The flag fields are plain booleans mutated in place. Per-position
// nullability lives in the packed payload and is reachable only through
// SetNullability and the position getters, so the audited-before-write
// contract cannot be bypassed.
//
// The zero value is available, classifies as Infer and is unaudited.
// MethodAnnotation is comparable; == covers every field including the full
// payload word.
type MethodAnnotation struct {
	// DesignatedInit marks the method a designated initializer of its
	// class.
	DesignatedInit bool

	// Unavailable marks the method unavailable to consumers of the
	// annotated API. UnavailableMsg carries the explanation shown in
	// diagnostics and is meaningful only while Unavailable is set.
	Unavailable    bool
	UnavailableMsg string

	// NullabilityAudited reports whether the signature was audited for
	// nullability. While unset every position reads as Unknown and the
	// payload must not be written.
	NullabilityAudited bool

	initKind    InitKind
	numAdjusted uint8
	payload     uint64
}

// InitKind returns the factory-method projection recorded for the method.
func (m MethodAnnotation) InitKind() InitKind {
	return m.initKind
}

// SetInitKind records the factory-method projection, replacing any prior
// value. It panics if kind is not a declared InitKind.
func (m *MethodAnnotation) SetInitKind(kind InitKind) {
	if !kind.Valid() {
		panic("apinotes: invalid init kind")
	}
	m.initKind = kind
}

// SetNullability records the audited nullability of one signature position.
// Rewriting a position replaces its previous value. Writing a position
// raises the adjusted-position count to cover it, so positions skipped below
// it read back as NonNullable rather than Unknown.
//
// SetNullability panics when NullabilityAudited is not set, when pos is
// outside [0, MaxPositions) or when kind is not a declared Nullability
// state. All three are caller bugs, not runtime conditions, and a panicking
// call leaves the record unchanged.
func (m *MethodAnnotation) SetNullability(pos int, kind Nullability) {
	if !m.NullabilityAudited {
		panic("apinotes: method not audited for nullability")
	}
	if pos < 0 || pos >= MaxPositions {
		panic("apinotes: nullability position out of range")
	}
	if !kind.Valid() {
		panic("apinotes: invalid nullability")
	}
	shift := uint(pos) * nullabilityBits
	m.payload &^= uint64(nullabilityMask) << shift
	m.payload |= uint64(kind) << shift
	if pos > int(m.numAdjusted) {
		m.numAdjusted = uint8(pos)
	}
}

// ReturnNullability returns the audited nullability of the return type.
// Unaudited methods report Unknown.
func (m MethodAnnotation) ReturnNullability() Nullability {
	return m.nullabilityAt(0)
}

// ParamNullability returns the audited nullability of parameter i, counting
// from zero. Unaudited methods report Unknown; audited methods report
// NonNullable for parameters beyond the adjusted-position count. It panics
// if i is negative.
func (m MethodAnnotation) ParamNullability(i int) Nullability {
	if i < 0 {
		panic("apinotes: negative parameter index")
	}
	return m.nullabilityAt(i + 1)
}

// nullabilityAt decodes one payload position under the audit rules.
func (m MethodAnnotation) nullabilityAt(pos int) Nullability {
	if !m.NullabilityAudited {
		return Unknown
	}
	if pos > int(m.numAdjusted) {
		return NonNullable
	}
	return Nullability((m.payload >> (uint(pos) * nullabilityBits)) & nullabilityMask)
}
