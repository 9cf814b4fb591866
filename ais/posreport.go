package ais

// navigationalStatusEnum labels message 1/2/3's 4-bit status code.
var navigationalStatusEnum = map[uint64]string{
	0:  "under way using engine",
	1:  "at anchor",
	2:  "not under command",
	3:  "restricted manoeuverability",
	4:  "constrained by her draught",
	5:  "moored",
	6:  "aground",
	7:  "engaged in fishing",
	8:  "under way sailing",
	15: "not defined",
}

// newPosReportClass builds the field table shared bit-for-bit by
// message classes 1, 2 and 3 (Position Report Class A, spec §4.4.3),
// differing only in ID and Name.
func newPosReportClass(id uint8, name string) MessageClass {
	return MessageClass{
		ID:   id,
		Name: name,
		Bits: 168,
		Fields: []Field{
			{Name: "MessageID", Type: TUint, Width: 6, Default: uint64(id), Auto: true},
			{Name: "RepeatIndicator", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "UserID", Type: TUint, Width: 30},
			{Name: "NavigationalStatus", Type: TUint, Width: 4, Default: uint64(15), Enum: navigationalStatusEnum},
			{Name: "ROT", Type: TInt, Width: 8, Default: int64(-128)},
			{Name: "SOG", Type: TUDecimal, Width: 10, Scale: 10, Default: float64(102.3)},
			{Name: "PositionAccuracy", Type: TBool, Width: 1, Default: false},
			{Name: "Position_longitude", Type: TDecimal, Width: 28, Scale: 600000, Default: float64(181)},
			{Name: "Position_latitude", Type: TDecimal, Width: 27, Scale: 600000, Default: float64(91)},
			{Name: "COG", Type: TUDecimal, Width: 12, Scale: 10, Default: float64(360)},
			{Name: "TrueHeading", Type: TUint, Width: 9, Default: uint64(511)},
			{Name: "TimeStamp", Type: TUint, Width: 6, Default: uint64(60)},
			{Name: "ManeuverIndicator", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "Spare", Type: TUint, Width: 3, Default: uint64(0), Auto: true},
			{Name: "RAIM", Type: TBool, Width: 1, Default: false},
			{Name: "CommState", Type: TCommState, Width: CommStateBits},
		},
	}
}
