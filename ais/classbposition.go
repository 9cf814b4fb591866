package ais

// newClassBPositionClass builds message 18's field table (Standard
// Class B Equipment Position Report, 168 bits, spec §4.4.3).
func newClassBPositionClass() MessageClass {
	return MessageClass{
		ID:   18,
		Name: "Standard Class B Position Report",
		Bits: 168,
		Fields: []Field{
			{Name: "MessageID", Type: TUint, Width: 6, Default: uint64(18), Auto: true},
			{Name: "RepeatIndicator", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "UserID", Type: TUint, Width: 30},
			{Name: "Reserved", Type: TUint, Width: 8, Default: uint64(0), Auto: true},
			{Name: "SOG", Type: TUDecimal, Width: 10, Scale: 10, Default: float64(102.3)},
			{Name: "PositionAccuracy", Type: TBool, Width: 1, Default: false},
			{Name: "Position_longitude", Type: TDecimal, Width: 28, Scale: 600000, Default: float64(181)},
			{Name: "Position_latitude", Type: TDecimal, Width: 27, Scale: 600000, Default: float64(91)},
			{Name: "COG", Type: TUDecimal, Width: 12, Scale: 10, Default: float64(360)},
			{Name: "TrueHeading", Type: TUint, Width: 9, Default: uint64(511)},
			{Name: "TimeStamp", Type: TUint, Width: 6, Default: uint64(60)},
			{Name: "RegionalReserved", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "CSUnit", Type: TBool, Width: 1, Default: false},
			{Name: "DisplayFlag", Type: TBool, Width: 1, Default: false},
			{Name: "DSCFlag", Type: TBool, Width: 1, Default: false},
			{Name: "BandFlag", Type: TBool, Width: 1, Default: true},
			{Name: "Msg22Flag", Type: TBool, Width: 1, Default: true},
			{Name: "AssignedMode", Type: TBool, Width: 1, Default: false},
			{Name: "RAIM", Type: TBool, Width: 1, Default: false},
			{Name: "CommStateSelector", Type: TUint, Width: 1, Default: uint64(1)},
			{Name: "CommState", Type: TCommState, Width: CommStateBits},
		},
	}
}
