// Package ais implements the per-message-class field tables, the
// signed/unsigned integer packing they build on, and the encode/decode
// routines that walk a class's field table end to end (spec §4.2,
// §4.4). The codec is table-driven: adding a class is a data addition
// (a constructor returning a MessageClass literal, plus one entry in
// registry.go's list), not a new encode/decode routine.
package ais

import (
	"strings"

	"github.com/rolker/noaadata/bitstream"
)

// Encode walks class.Fields in order, building a BitBuffer from input.
// Auto fields (MessageID, Spare, Reserved) always emit their declared
// default, overriding any caller value. Encoding does not 6-bit-align
// the result; that is the caller's responsibility (spec §4.4.1).
func Encode(class MessageClass, input map[string]any) (*bitstream.Buffer, error) {
	buf := bitstream.New()

	for _, f := range class.Fields {
		if f.Type == TCommState {
			cs, err := commStateFromInput(input)
			if err != nil {
				return nil, err
			}
			if err := EncodeCommState(buf, cs); err != nil {
				return nil, err
			}
			continue
		}

		value, err := resolveValue(f, input)
		if err != nil {
			return nil, err
		}

		if err := packField(buf, f, value); err != nil {
			return nil, err
		}
	}

	return buf, nil
}

func commStateFromInput(input map[string]any) (CommState, error) {
	sync, ok := asUint64(input["state_syncstate"])
	if !ok {
		return CommState{}, MissingFieldError{Field: "state_syncstate"}
	}
	timeout, ok := asUint64(input["state_slottimeout"])
	if !ok {
		return CommState{}, MissingFieldError{Field: "state_slottimeout"}
	}
	offset, ok := asUint64(input["state_slotoffset"])
	if !ok {
		return CommState{}, MissingFieldError{Field: "state_slotoffset"}
	}
	return CommState{SyncState: sync, SlotTimeout: timeout, SlotOffset: offset}, nil
}

// resolveValue applies the "caller value, else default, else
// MissingField" rule of spec §4.4.1 step 2.
func resolveValue(f Field, input map[string]any) (any, error) {
	if f.Auto {
		return f.Default, nil
	}
	if v, ok := input[f.Name]; ok {
		return v, nil
	}
	if f.Default != nil {
		return f.Default, nil
	}
	return nil, MissingFieldError{Field: f.Name}
}

func packField(buf *bitstream.Buffer, f Field, value any) error {
	switch f.Type {
	case TUint:
		v, ok := asUint64(value)
		if !ok {
			return OutOfRangeError{Field: f.Name, Width: f.Width}
		}
		return packUint(buf, f.Name, v, f.Width)
	case TInt:
		v, ok := asInt64(value)
		if !ok {
			return OutOfRangeError{Field: f.Name, Width: f.Width}
		}
		return packInt(buf, f.Name, v, f.Width)
	case TBool:
		v, ok := value.(bool)
		if !ok {
			return OutOfRangeError{Field: f.Name, Width: 1}
		}
		var u uint64
		if v {
			u = 1
		}
		return packUint(buf, f.Name, u, 1)
	case TDecimal:
		d, ok := asDecimal(value, f.Scale)
		if !ok {
			return OutOfRangeError{Field: f.Name, Width: f.Width}
		}
		return packInt(buf, f.Name, d.Scaled, f.Width)
	case TUDecimal:
		d, ok := asDecimal(value, f.Scale)
		if !ok {
			return OutOfRangeError{Field: f.Name, Width: f.Width}
		}
		return packUint(buf, f.Name, uint64(d.Scaled), f.Width)
	case TString6:
		s, ok := value.(string)
		if !ok {
			return OutOfRangeError{Field: f.Name, Width: f.Width}
		}
		return packString6(buf, f.Name, s, f.Width)
	}
	return nil
}

func packUint(buf *bitstream.Buffer, name string, value uint64, width int) error {
	b, err := bitstream.NewFromUint(value, width)
	if err != nil {
		return OutOfRangeError{Field: name, Value: int64(value), Width: width}
	}
	buf.Append(b)
	return nil
}

func packInt(buf *bitstream.Buffer, name string, value int64, width int) error {
	lo := -(int64(1) << uint(width-1))
	hi := (int64(1) << uint(width-1)) - 1
	if value < lo || value > hi {
		return OutOfRangeError{Field: name, Value: value, Width: width}
	}
	u := uint64(value) & ((uint64(1) << uint(width)) - 1)
	b, err := bitstream.NewFromUint(u, width)
	if err != nil {
		return OutOfRangeError{Field: name, Value: value, Width: width}
	}
	buf.Append(b)
	return nil
}

func packString6(buf *bitstream.Buffer, name string, s string, width int) error {
	var chars int
	if width == RemainderWidth {
		chars = len(s)
	} else {
		chars = width / 6
		if len(s) > chars {
			return OutOfRangeError{Field: name, Value: int64(len(s)), Width: width}
		}
	}
	padded := make([]byte, chars)
	copy(padded, strings.ToUpper(s))
	for i := len(s); i < chars; i++ {
		padded[i] = '@'
	}
	for _, ch := range padded {
		b, err := bitstream.NewFromUint(asciiToSextet(ch), 6)
		if err != nil {
			return OutOfRangeError{Field: name, Width: 6}
		}
		buf.Append(b)
	}
	return nil
}

func asciiToSextet(ch byte) uint64 {
	switch {
	case ch >= 64 && ch <= 95:
		return uint64(ch - 64)
	case ch >= 32 && ch <= 63:
		return uint64(ch)
	default:
		return 0
	}
}

func sextetToASCII(v uint64) byte {
	if v < 32 {
		return byte(v) + 64
	}
	return byte(v)
}

// Decode reads the leading 6 bits of buf as MessageID, routes to the
// matching class's field table, and walks it in order (spec §4.4.2).
func Decode(buf *bitstream.Buffer) (*Record, uint8, error) {
	rawID, err := buf.AsUint(0, 6)
	if err != nil {
		return nil, 0, TruncatedBufferError{Field: "MessageID", Offset: 0, Need: 6, Have: buf.Len()}
	}

	class, ok := ClassByID(uint8(rawID))
	if !ok {
		return nil, 0, UnknownMessageClassError{ID: rawID}
	}

	record := NewRecord()
	offset := 0

	for _, f := range class.Fields {
		if f.Type == TCommState {
			cs, err := DecodeCommState(buf, offset)
			if err != nil {
				return nil, 0, err
			}
			record.Set("state_syncstate", cs.SyncState)
			record.Set("state_slottimeout", cs.SlotTimeout)
			record.Set("state_slotoffset", cs.SlotOffset)
			offset += CommStateBits
			continue
		}

		width := f.Width
		if f.IsVariable() {
			remaining := buf.Len() - offset
			width = (remaining / 6) * 6
		}

		if f.Auto {
			record.Set(f.Name, f.Default)
			offset += width
			continue
		}

		value, err := unpackField(buf, f, offset, width)
		if err != nil {
			return nil, 0, err
		}
		record.Set(f.Name, value)
		offset += width
	}

	return record, uint8(rawID), nil
}

func unpackField(buf *bitstream.Buffer, f Field, offset, width int) (any, error) {
	lo, hi := offset, offset+width
	switch f.Type {
	case TUint:
		v, err := buf.AsUint(lo, hi)
		if err != nil {
			return nil, TruncatedBufferError{Field: f.Name, Offset: lo, Need: width, Have: buf.Len() - lo}
		}
		return v, nil
	case TInt:
		v, err := buf.AsInt(lo, hi)
		if err != nil {
			return nil, TruncatedBufferError{Field: f.Name, Offset: lo, Need: width, Have: buf.Len() - lo}
		}
		return v, nil
	case TBool:
		v, err := buf.AsUint(lo, hi)
		if err != nil {
			return nil, TruncatedBufferError{Field: f.Name, Offset: lo, Need: width, Have: buf.Len() - lo}
		}
		return v != 0, nil
	case TDecimal:
		raw, err := buf.AsInt(lo, hi)
		if err != nil {
			return nil, TruncatedBufferError{Field: f.Name, Offset: lo, Need: width, Have: buf.Len() - lo}
		}
		return Decimal{Scaled: raw, Scale: f.Scale}, nil
	case TUDecimal:
		raw, err := buf.AsUint(lo, hi)
		if err != nil {
			return nil, TruncatedBufferError{Field: f.Name, Offset: lo, Need: width, Have: buf.Len() - lo}
		}
		return Decimal{Scaled: int64(raw), Scale: f.Scale}, nil
	case TString6:
		return unpackString6(buf, f.Name, lo, width)
	}
	return nil, nil
}

func unpackString6(buf *bitstream.Buffer, name string, offset, width int) (string, error) {
	chars := width / 6
	out := make([]byte, chars)
	for i := 0; i < chars; i++ {
		lo := offset + i*6
		v, err := buf.AsUint(lo, lo+6)
		if err != nil {
			return "", TruncatedBufferError{Field: name, Offset: lo, Need: 6, Have: buf.Len() - lo}
		}
		out[i] = sextetToASCII(v)
	}
	return strings.TrimRight(string(out), "@"), nil
}

func asUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint64:
		return x, true
	case uint:
		return uint64(x), true
	case int:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int64:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	default:
		return 0, false
	}
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case uint64:
		return int64(x), true
	default:
		return 0, false
	}
}

func asDecimal(v any, scale int64) (Decimal, bool) {
	switch x := v.(type) {
	case Decimal:
		return x, true
	case float64:
		return NewDecimal(x, scale), true
	case int:
		return NewDecimal(float64(x), scale), true
	case int64:
		return NewDecimal(float64(x), scale), true
	default:
		return Decimal{}, false
	}
}
