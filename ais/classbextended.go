package ais

// newClassBExtendedClass builds message 19's field table (Extended
// Class B Equipment Position Report, 312 bits, spec §4.4.3).
func newClassBExtendedClass() MessageClass {
	return MessageClass{
		ID:   19,
		Name: "Extended Class B Position Report",
		Bits: 312,
		Fields: []Field{
			{Name: "MessageID", Type: TUint, Width: 6, Default: uint64(19), Auto: true},
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
			{Name: "RegionalReserved", Type: TUint, Width: 4, Default: uint64(0)},
			{Name: "VesselName", Type: TString6, Width: 120, Default: ""},
			{Name: "ShipType", Type: TUint, Width: 8, Default: uint64(0), Enum: shipTypeEnum},
			{Name: "DimensionToBow", Type: TUint, Width: 9, Default: uint64(0)},
			{Name: "DimensionToStern", Type: TUint, Width: 9, Default: uint64(0)},
			{Name: "DimensionToPort", Type: TUint, Width: 6, Default: uint64(0)},
			{Name: "DimensionToStarboard", Type: TUint, Width: 6, Default: uint64(0)},
			{Name: "fixtype", Type: TUint, Width: 4, Default: uint64(0), Enum: epfdEnum},
			{Name: "RAIM", Type: TBool, Width: 1, Default: false},
			{Name: "DTE", Type: TBool, Width: 1, Default: false},
			{Name: "AssignedMode", Type: TBool, Width: 1, Default: false},
			{Name: "Spare", Type: TUint, Width: 4, Default: uint64(0), Auto: true},
		},
	}
}
