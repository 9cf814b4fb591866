package ais

// epfdEnum labels the 4-bit "type of electronic position fixing
// device" code shared by messages 4, 5, 11, 19 and 21.
var epfdEnum = map[uint64]string{
	0: "undefined",
	1: "GPS",
	2: "GLONASS",
	3: "GPS/GLONASS",
	4: "Loran-C",
	5: "Chayka",
	6: "integrated navigation system",
	7: "surveyed",
	8: "Galileo",
}

// newBaseStationClass builds the field table shared bit-for-bit by
// message 4 (Base Station Report) and message 11 (UTC/Date Response),
// differing only in ID and Name (spec §4.4.3).
func newBaseStationClass(id uint8, name string) MessageClass {
	return MessageClass{
		ID:   id,
		Name: name,
		Bits: 168,
		Fields: []Field{
			{Name: "MessageID", Type: TUint, Width: 6, Default: uint64(id), Auto: true},
			{Name: "RepeatIndicator", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "UserID", Type: TUint, Width: 30},
			{Name: "Time_year", Type: TUint, Width: 14, Default: uint64(0)},
			{Name: "Time_month", Type: TUint, Width: 4, Default: uint64(0)},
			{Name: "Time_day", Type: TUint, Width: 5, Default: uint64(0)},
			{Name: "Time_hour", Type: TUint, Width: 5, Default: uint64(24)},
			{Name: "Time_min", Type: TUint, Width: 6, Default: uint64(60)},
			{Name: "Time_sec", Type: TUint, Width: 6, Default: uint64(60)},
			{Name: "PositionAccuracy", Type: TBool, Width: 1, Default: false},
			{Name: "Position_longitude", Type: TDecimal, Width: 28, Scale: 600000, Default: float64(181)},
			{Name: "Position_latitude", Type: TDecimal, Width: 27, Scale: 600000, Default: float64(91)},
			{Name: "fixtype", Type: TUint, Width: 4, Default: uint64(0), Enum: epfdEnum},
			{Name: "Spare", Type: TUint, Width: 10, Default: uint64(0), Auto: true},
			{Name: "RAIM", Type: TBool, Width: 1, Default: false},
			{Name: "CommState", Type: TCommState, Width: CommStateBits},
		},
	}
}
