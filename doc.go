// Package apinotes models the records of an annotation database: compact,
// fixed-size facts layered onto a foreign API from the outside, such as
// audited nullability or availability, that the API's own declarations do
// not express.
//
// # Records
//
// Three record types cover the annotated entities. ClassAnnotation holds an
// optional class-wide default nullability. PropertyAnnotation holds a single
// property's audited nullability. MethodAnnotation combines initializer
// disposition, availability and per-position nullability for an entire
// method signature, packed two bits per position into one 64-bit word.
// SelectorRef names a method during lookup without owning or copying the
// selector pieces.
//
// Absent facts stay distinguishable from every declared value: optional
// getters return a comma-ok pair, and unaudited method signatures read as
// Unknown everywhere. Mutators validate their inputs and panic on caller
// bugs such as an undeclared enum value or an out-of-range position, the
// same way a slice rejects a bad index.
//
// # Equality
//
// All record types are comparable. Two records are equal under == exactly
// when every recorded fact matches, including which facts are present.
//
// # Binary encoding
//
// Every record implements encoding.BinaryMarshaler, encoding.BinaryAppender
// and encoding.BinaryUnmarshaler with a canonical fixed layout: equal
// records encode to equal bytes, and decoding accepts only bytes the
// encoder can produce. Compiled databases built from these records use the
// BinaryExtension file extension.
//
// # Concurrency
//
// Records are plain values with no internal locking. Construct and mutate a
// record in one goroutine; once published, any number of goroutines may
// read it concurrently.
//
// Annotating a designated initializer looks like this:
//
//	var m apinotes.MethodAnnotation
//	m.DesignatedInit = true
//	m.NullabilityAudited = true
//	m.SetNullability(0, apinotes.NonNullable) // return type
//	m.SetNullability(1, apinotes.Nullable)    // first parameter
package apinotes
