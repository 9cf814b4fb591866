package ais

// newBinAckClass builds message 7's field table (Binary Acknowledge,
// 168 bits, spec §4.4.3): a fixed header plus four (DestID, SeqID)
// pairs at fixed offsets. Trailing unused pairs wire as zero and
// decode as literal zero — there is no "unused" sentinel for them
// (spec's Message 7 note), so DestID2..4/SeqID2..4 simply default to
// zero when the caller omits them.
func newBinAckClass() MessageClass {
	return MessageClass{
		ID:   7,
		Name: "Binary Acknowledge",
		Bits: 168,
		Fields: []Field{
			{Name: "MessageID", Type: TUint, Width: 6, Default: uint64(7), Auto: true},
			{Name: "RepeatIndicator", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "UserID", Type: TUint, Width: 30},
			{Name: "Spare", Type: TUint, Width: 2, Default: uint64(0), Auto: true},
			{Name: "DestID1", Type: TUint, Width: 30},
			{Name: "SeqID1", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "DestID2", Type: TUint, Width: 30, Default: uint64(0)},
			{Name: "SeqID2", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "DestID3", Type: TUint, Width: 30, Default: uint64(0)},
			{Name: "SeqID3", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "DestID4", Type: TUint, Width: 30, Default: uint64(0)},
			{Name: "SeqID4", Type: TUint, Width: 2, Default: uint64(0)},
		},
	}
}
