package ais

import "fmt"

// FieldType is the semantic type of a field's decoded value (spec §3).
type FieldType int

const (
	// TUint decodes to a uint64.
	TUint FieldType = iota
	// TInt decodes to an int64, two's-complement over its declared width.
	TInt
	// TBool decodes to a bool (a single-bit field).
	TBool
	// TDecimal decodes to a Decimal built from a signed integer field.
	TDecimal
	// TUDecimal decodes to a Decimal built from an unsigned integer field.
	TUDecimal
	// TString6 decodes to a string of 6-bit ASCII characters, with
	// trailing '@' padding stripped.
	TString6
	// TCommState decodes the shared 19-bit SOTDMA sub-field (see
	// commstate.go) into three record fields named "state_syncstate",
	// "state_slottimeout" and "state_slotoffset", regardless of the
	// field's own Name.
	TCommState
)

// RemainderWidth, used as Field.Width, marks a trailing string6 field
// that consumes whatever bits remain in the message rather than a
// fixed width — the convention used for the variable-length safety
// text/name-extension tails of message classes 12, 14 and 21 (spec §4.4.3,
// DESIGN.md Open Question (c)).
const RemainderWidth = -1

// Field is a named bit-range within a message class.
type Field struct {
	Name string
	Type FieldType
	// Width in bits. RemainderWidth for a trailing variable-length
	// string6 field.
	Width int
	// Scale is the LSB-per-unit divisor for TDecimal/TUDecimal fields
	// (e.g. 600000 for coordinates, 10 for COG/SOG/draught).
	Scale int64
	// Default is emitted when the caller omits the field from the
	// input record. nil means the field is required.
	Default any
	// Auto marks a field the codec always emits as Default regardless
	// of caller input (MessageID, Spare, Reserved fillers).
	Auto bool
	// Enum maps a raw integer value to a human-readable label, used
	// only by presentation (Field.EnumLabel); the codec path never
	// rejects an unmapped value.
	Enum map[uint64]string
}

// EnumLabel returns the human label for a raw value, if the field
// declares one.
func (f Field) EnumLabel(raw uint64) (string, bool) {
	if f.Enum == nil {
		return "", false
	}
	label, ok := f.Enum[raw]
	return label, ok
}

// IsVariable reports whether the field consumes the remainder of the
// buffer rather than a fixed width.
func (f Field) IsVariable() bool {
	return f.Width == RemainderWidth
}

// describe renders a one-line human-readable description of the
// field's type for MessageClass.Describe()'s documentation table.
func (f Field) describe() string {
	var kind string
	switch f.Type {
	case TUint:
		kind = "unsigned integer"
	case TInt:
		kind = "signed integer"
	case TBool:
		kind = "boolean flag"
	case TDecimal:
		kind = "signed decimal"
	case TUDecimal:
		kind = "unsigned decimal"
	case TString6:
		kind = "6-bit ASCII string"
	case TCommState:
		kind = "SOTDMA/ITDMA communications state"
	}
	if f.Scale > 1 {
		kind += fmt.Sprintf(", scale 1/%d", f.Scale)
	}
	if f.Enum != nil {
		kind += ", enumerated"
	}
	if f.IsVariable() {
		kind += ", remainder of message"
	}
	return kind
}
