package ais

// MessageClass is a numbered AIS message type (spec §3): a nominal
// total bit length and an ordered field table covering it.
//
// Bits is the nominal length for fixed-width classes, or the fixed
// header length for classes carrying a RemainderWidth tail field
// (12, 14, 21's name extension).
type MessageClass struct {
	ID     uint8
	Name   string
	Bits   int
	Fields []Field
}

// commStateFieldNames are the literal record keys Decode sets for a
// TCommState field (ais/codec.go), regardless of the field's own Name.
var commStateFieldNames = []string{"state_syncstate", "state_slottimeout", "state_slotoffset"}

// FieldNames returns the ordered list of field names for documentation
// generation and CLI --fields style enumeration (spec §6). A TCommState
// field expands to the three record keys Decode actually emits for it,
// so this list matches record.Names() on a decoded message.
func (c MessageClass) FieldNames() []string {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		if f.Type == TCommState {
			names = append(names, commStateFieldNames...)
			continue
		}
		names = append(names, f.Name)
	}
	return names
}

// DescribeRow is one row of a class's textual documentation table
// (spec §6 "a per-class textual table (name, width, description)").
type DescribeRow struct {
	Name        string
	Width       int
	Description string
}

// commStateSubRows documents the three sub-fields Decode actually
// produces for a TCommState field, in place of the single synthetic
// "CommState" name.
var commStateSubRows = []struct {
	name  string
	width int
	desc  string
}{
	{"state_syncstate", 2, "unsigned integer, SOTDMA sync state"},
	{"state_slottimeout", 3, "unsigned integer, SOTDMA slot timeout"},
	{"state_slotoffset", 14, "unsigned integer, raw slot offset (uninterpreted)"},
}

// Describe returns the per-class documentation table, one row per
// record key Decode actually produces, in declaration order.
// Description is synthesized from the field's type, scale and enum
// rather than hand-authored prose — the same information the Python
// textDefinitionTable drew from its field tuples, just assembled at
// call time instead of baked into a string literal per field. A
// TCommState field expands to its three sub-field rows so the table
// matches record.Names() on a decoded message.
func (c MessageClass) Describe() []DescribeRow {
	rows := make([]DescribeRow, 0, len(c.Fields))
	for _, f := range c.Fields {
		if f.Type == TCommState {
			for _, sub := range commStateSubRows {
				rows = append(rows, DescribeRow{Name: sub.name, Width: sub.width, Description: sub.desc})
			}
			continue
		}
		rows = append(rows, DescribeRow{Name: f.Name, Width: f.Width, Description: f.describe()})
	}
	return rows
}
