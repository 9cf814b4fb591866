package ais

// newAddressedSafetyClass builds message 12's field table (Addressed
// Safety Related Message): a 72-bit fixed header followed by a
// variable-length 6-bit-ASCII text tail that consumes the remainder
// of the buffer (spec §4.4.3, DESIGN.md Open Question (c)).
func newAddressedSafetyClass() MessageClass {
	return MessageClass{
		ID:   12,
		Name: "Addressed Safety Related Message",
		Bits: 72,
		Fields: []Field{
			{Name: "MessageID", Type: TUint, Width: 6, Default: uint64(12), Auto: true},
			{Name: "RepeatIndicator", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "UserID", Type: TUint, Width: 30},
			{Name: "SeqNum", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "DestinationID", Type: TUint, Width: 30},
			{Name: "RetransmitFlag", Type: TBool, Width: 1, Default: false},
			{Name: "Spare", Type: TUint, Width: 1, Default: uint64(0), Auto: true},
			{Name: "Text", Type: TString6, Width: RemainderWidth},
		},
	}
}

// newBroadcastSafetyClass builds message 14's field table (Safety
// Related Broadcast Message): a 40-bit fixed header followed by the
// same variable-length text tail convention as message 12.
func newBroadcastSafetyClass() MessageClass {
	return MessageClass{
		ID:   14,
		Name: "Safety Related Broadcast Message",
		Bits: 40,
		Fields: []Field{
			{Name: "MessageID", Type: TUint, Width: 6, Default: uint64(14), Auto: true},
			{Name: "RepeatIndicator", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "UserID", Type: TUint, Width: 30},
			{Name: "Spare", Type: TUint, Width: 2, Default: uint64(0), Auto: true},
			{Name: "Text", Type: TString6, Width: RemainderWidth},
		},
	}
}
