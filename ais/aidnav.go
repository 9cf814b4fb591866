package ais

// aidTypeEnum labels message 21's 5-bit AidType code.
var aidTypeEnum = map[uint64]string{
	0:  "not available",
	1:  "reference point",
	5:  "light",
	6:  "light with sectors",
	19: "mooring/warping buoy",
	30: "isolated danger",
}

// newAidNavClass builds message 21's field table (Aid-to-Navigation
// Report): a 272-bit fixed header followed by a variable-length
// 6-bit-ASCII name-extension tail (spec §4.4.3, DESIGN.md Open
// Question (c)).
func newAidNavClass() MessageClass {
	return MessageClass{
		ID:   21,
		Name: "Aid-to-Navigation Report",
		Bits: 272,
		Fields: []Field{
			{Name: "MessageID", Type: TUint, Width: 6, Default: uint64(21), Auto: true},
			{Name: "RepeatIndicator", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "UserID", Type: TUint, Width: 30},
			{Name: "AidType", Type: TUint, Width: 5, Default: uint64(0), Enum: aidTypeEnum},
			{Name: "VesselName", Type: TString6, Width: 120, Default: ""},
			{Name: "PositionAccuracy", Type: TBool, Width: 1, Default: false},
			{Name: "Position_longitude", Type: TDecimal, Width: 28, Scale: 600000, Default: float64(181)},
			{Name: "Position_latitude", Type: TDecimal, Width: 27, Scale: 600000, Default: float64(91)},
			{Name: "DimensionToBow", Type: TUint, Width: 9, Default: uint64(0)},
			{Name: "DimensionToStern", Type: TUint, Width: 9, Default: uint64(0)},
			{Name: "DimensionToPort", Type: TUint, Width: 6, Default: uint64(0)},
			{Name: "DimensionToStarboard", Type: TUint, Width: 6, Default: uint64(0)},
			{Name: "fixtype", Type: TUint, Width: 4, Default: uint64(0), Enum: epfdEnum},
			{Name: "TimeStamp", Type: TUint, Width: 6, Default: uint64(60)},
			{Name: "OffPosition", Type: TBool, Width: 1, Default: false},
			{Name: "RegionalReserved", Type: TUint, Width: 8, Default: uint64(0)},
			{Name: "RAIM", Type: TBool, Width: 1, Default: false},
			{Name: "VirtualAid", Type: TBool, Width: 1, Default: false},
			{Name: "AssignedMode", Type: TBool, Width: 1, Default: false},
			{Name: "Spare", Type: TUint, Width: 1, Default: uint64(0), Auto: true},
			{Name: "NameExtension", Type: TString6, Width: RemainderWidth},
		},
	}
}
