package ais

import "github.com/rolker/noaadata/bitstream"

// CommState is the 19-bit SOTDMA/ITDMA communications-state sub-format
// shared by message classes 1-4, 9, 11, 18 (spec §3, §9). The field
// layout (2 bits syncstate, 3 bits slottimeout, 14 bits slotoffset) is
// bit-identical regardless of the SOTDMA/ITDMA selector that precedes
// it in classes that carry one (e.g. message 9's comm_state bit); this
// sub-codec only ever decodes the SOTDMA interpretation, per spec §3:
// "For messages with a 1-bit selector... the selector picks SOTDMA (0)
// vs ITDMA (1) and the 19 bits are interpreted accordingly" — the
// ITDMA interpretation is not needed by any field the spec names, so
// it is not decoded separately.
//
// SlotOffset is preserved bit-exact and uninterpreted: the upstream
// Python source labels it "BROKEN" with no further explanation
// (DESIGN.md Open Question (a)), so this codec defers interpretation
// entirely and just round-trips the raw 14-bit value.
type CommState struct {
	SyncState   uint64
	SlotTimeout uint64
	SlotOffset  uint64
}

// CommStateBits is the fixed width of the sub-field.
const CommStateBits = 19

// EncodeCommState appends the 19-bit sub-field to buf.
func EncodeCommState(buf *bitstream.Buffer, cs CommState) error {
	sync, err := bitstream.NewFromUint(cs.SyncState, 2)
	if err != nil {
		return OutOfRangeError{Field: "state_syncstate", Value: int64(cs.SyncState), Width: 2}
	}
	timeout, err := bitstream.NewFromUint(cs.SlotTimeout, 3)
	if err != nil {
		return OutOfRangeError{Field: "state_slottimeout", Value: int64(cs.SlotTimeout), Width: 3}
	}
	offset, err := bitstream.NewFromUint(cs.SlotOffset, 14)
	if err != nil {
		return OutOfRangeError{Field: "state_slotoffset", Value: int64(cs.SlotOffset), Width: 14}
	}
	buf.Append(sync).Append(timeout).Append(offset)
	return nil
}

// DecodeCommState reads the 19-bit sub-field starting at offset.
func DecodeCommState(buf *bitstream.Buffer, offset int) (CommState, error) {
	sync, err := buf.AsUint(offset, offset+2)
	if err != nil {
		return CommState{}, TruncatedBufferError{Field: "state_syncstate", Offset: offset, Need: 2, Have: buf.Len() - offset}
	}
	timeout, err := buf.AsUint(offset+2, offset+5)
	if err != nil {
		return CommState{}, TruncatedBufferError{Field: "state_slottimeout", Offset: offset + 2, Need: 3, Have: buf.Len() - (offset + 2)}
	}
	slotOffset, err := buf.AsUint(offset+5, offset+19)
	if err != nil {
		return CommState{}, TruncatedBufferError{Field: "state_slotoffset", Offset: offset + 5, Need: 14, Have: buf.Len() - (offset + 5)}
	}
	return CommState{SyncState: sync, SlotTimeout: timeout, SlotOffset: slotOffset}, nil
}
