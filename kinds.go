package apinotes

import "fmt"

// Nullability classifies whether a pointer-like value in an annotated API
// may be null. It is used for property types, method return types and
// method parameters alike.
//
// The numeric values are part of the binary record encoding. Do not reorder.
type Nullability uint8

const (
	// NonNullable marks a value that is never null.
	NonNullable Nullability = iota

	// Nullable marks a value that may be null.
	Nullable

	// Unknown marks a value whose nullability has not been audited.
	Unknown
)

// Valid reports whether n is one of the declared nullability states.
func (n Nullability) Valid() bool {
	return n <= Unknown
}

// String implements fmt.Stringer.
func (n Nullability) String() string {
	switch n {
	case NonNullable:
		return "nonnull"
	case Nullable:
		return "nullable"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(n))
	}
}

// InitKind states whether a factory-style class method should be projected
// as an initializer of the class instead of a plain class method.
//
// The numeric values are part of the binary record encoding. Do not reorder.
type InitKind uint8

const (
	// Infer leaves the decision to the importer, based on the method's
	// name and signature. This is the default for every method.
	Infer InitKind = iota

	// TreatAsClassMethod forces projection as a plain class method.
	TreatAsClassMethod

	// TreatAsInitializer forces projection as an initializer.
	TreatAsInitializer
)

// Valid reports whether k names a declared projection.
func (k InitKind) Valid() bool {
	return k <= TreatAsInitializer
}

// String returns a short lowercase name for k.
func (k InitKind) String() string {
	switch k {
	case Infer:
		return "infer"
	case TreatAsClassMethod:
		return "class-method"
	case TreatAsInitializer:
		return "initializer"
	default:
		return fmt.Sprintf("invalid(%d)", uint8(k))
	}
}
