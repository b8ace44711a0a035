package apinotes

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// BinaryExtension is the file extension for the compiled binary form of an
// annotation database. Tools that persist collections of records are
// expected to honor it.
const BinaryExtension = "apinotesc"

// Binary record layouts. The encodings are canonical: a record always
// encodes to the same bytes, and decoding accepts only bytes the encoder
// can produce, so unmarshal followed by marshal reproduces the input
// bit for bit. Changing a layout breaks every persisted database.
//
// ClassAnnotation and PropertyAnnotation encode to a single byte:
//
//	bit  0    presence (default declared / nullability audited)
//	bits 1-2  Nullability, zero when absent
//	bits 3-7  reserved, zero
//
// MethodAnnotation encodes to ten fixed bytes plus the availability
// message:
//
//	byte  0    flags: bit 0 designated init, bit 1 unavailable,
//	           bit 2 audited, bits 3-4 InitKind, bits 5-7 reserved
//	byte  1    adjusted-position count
//	bytes 2-9  nullability payload, little-endian uint64
//	tail       uvarint message length, message bytes
const (
	optionalPresentBit = 0x01
	optionalKindShift  = 1

	methodDesignatedInitBit = 0x01
	methodUnavailableBit    = 0x02
	methodAuditedBit        = 0x04
	methodInitKindShift     = 3
	methodInitKindBits      = 2
	methodFixedSize         = 10
)

// appendOptionalNullability packs a presence flag and kind into one byte.
func appendOptionalNullability(b []byte, present bool, kind Nullability) []byte {
	var enc byte
	if present {
		enc = optionalPresentBit | byte(kind)<<optionalKindShift
	}
	return append(b, enc)
}

// parseOptionalNullability is the strict inverse of
// appendOptionalNullability.
func parseOptionalNullability(data []byte) (bool, Nullability, error) {
	if len(data) == 0 {
		return false, 0, errors.New("short buffer for nullability byte")
	}
	if len(data) > 1 {
		return false, 0, errors.New("trailing bytes after nullability byte")
	}
	enc := data[0]
	if enc>>(optionalKindShift+nullabilityBits) != 0 {
		return false, 0, fmt.Errorf("reserved nullability bits set: %#02x", enc)
	}
	kind := Nullability(enc >> optionalKindShift)
	if !kind.Valid() {
		return false, 0, fmt.Errorf("invalid nullability value %d", uint8(kind))
	}
	present := enc&optionalPresentBit != 0
	if !present && kind != 0 {
		return false, 0, errors.New("nullability set on absent annotation")
	}
	return present, kind, nil
}

// AppendBinary implements encoding.BinaryAppender.
func (c ClassAnnotation) AppendBinary(b []byte) ([]byte, error) {
	return appendOptionalNullability(b, c.hasDefault, c.kind), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c ClassAnnotation) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(nil)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It rejects any
// input the encoder cannot produce.
func (c *ClassAnnotation) UnmarshalBinary(data []byte) error {
	present, kind, err := parseOptionalNullability(data)
	if err != nil {
		return fmt.Errorf("class annotation: %w", err)
	}
	c.hasDefault = present
	c.kind = kind
	return nil
}

// AppendBinary implements encoding.BinaryAppender.
func (p PropertyAnnotation) AppendBinary(b []byte) ([]byte, error) {
	return appendOptionalNullability(b, p.audited, p.kind), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p PropertyAnnotation) MarshalBinary() ([]byte, error) {
	return p.AppendBinary(nil)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It rejects any
// input the encoder cannot produce.
func (p *PropertyAnnotation) UnmarshalBinary(data []byte) error {
	present, kind, err := parseOptionalNullability(data)
	if err != nil {
		return fmt.Errorf("property annotation: %w", err)
	}
	p.audited = present
	p.kind = kind
	return nil
}

// AppendBinary implements encoding.BinaryAppender.
func (m MethodAnnotation) AppendBinary(b []byte) ([]byte, error) {
	var flags byte
	if m.DesignatedInit {
		flags |= methodDesignatedInitBit
	}
	if m.Unavailable {
		flags |= methodUnavailableBit
	}
	if m.NullabilityAudited {
		flags |= methodAuditedBit
	}
	flags |= byte(m.initKind) << methodInitKindShift
	b = append(b, flags, m.numAdjusted)
	b = binary.LittleEndian.AppendUint64(b, m.payload)
	b = binary.AppendUvarint(b, uint64(len(m.UnavailableMsg)))
	b = append(b, m.UnavailableMsg...)
	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m MethodAnnotation) MarshalBinary() ([]byte, error) {
	return m.AppendBinary(nil)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It rejects any
// input the encoder cannot produce: reserved bits, out-of-range enum
// values, payload state the setters cannot reach, non-minimal length
// encodings and trailing bytes all fail.
func (m *MethodAnnotation) UnmarshalBinary(data []byte) error {
	if len(data) < methodFixedSize {
		return errors.New("method annotation: short buffer")
	}
	flags := data[0]
	if flags>>(methodInitKindShift+methodInitKindBits) != 0 {
		return fmt.Errorf("method annotation: reserved flag bits set: %#02x", flags)
	}
	initKind := InitKind(flags >> methodInitKindShift)
	if !initKind.Valid() {
		return fmt.Errorf("method annotation: invalid init kind %d", uint8(initKind))
	}
	numAdjusted := data[1]
	if numAdjusted >= MaxPositions {
		return fmt.Errorf("method annotation: adjusted-position count %d exceeds payload", numAdjusted)
	}
	payload := binary.LittleEndian.Uint64(data[2:methodFixedSize])

	audited := flags&methodAuditedBit != 0
	if !audited && (numAdjusted != 0 || payload != 0) {
		return errors.New("method annotation: nullability data without audit flag")
	}
	if audited {
		used := (uint(numAdjusted) + 1) * nullabilityBits
		if payload>>used != 0 {
			return errors.New("method annotation: payload bits beyond adjusted-position count")
		}
		for pos := uint(0); pos <= uint(numAdjusted); pos++ {
			kind := Nullability((payload >> (pos * nullabilityBits)) & nullabilityMask)
			if !kind.Valid() {
				return fmt.Errorf("method annotation: invalid nullability at position %d", pos)
			}
		}
	}

	rest := data[methodFixedSize:]
	msgLen, n := binary.Uvarint(rest)
	if n <= 0 {
		return errors.New("method annotation: invalid message length")
	}
	if n > 1 && rest[n-1] == 0 {
		return errors.New("method annotation: non-minimal message length")
	}
	rest = rest[n:]
	if uint64(len(rest)) < msgLen {
		return errors.New("method annotation: short buffer for message")
	}
	if uint64(len(rest)) > msgLen {
		return errors.New("method annotation: trailing bytes after message")
	}

	m.DesignatedInit = flags&methodDesignatedInitBit != 0
	m.Unavailable = flags&methodUnavailableBit != 0
	m.UnavailableMsg = string(rest)
	m.NullabilityAudited = audited
	m.initKind = initKind
	m.numAdjusted = numAdjusted
	m.payload = payload
	return nil
}
