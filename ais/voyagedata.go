package ais

// shipTypeEnum labels a handful of the more common ShipType codes
// (message 5's full table runs 0-99; spec only requires pass-through,
// this is a presentation convenience).
var shipTypeEnum = map[uint64]string{
	0:  "not available",
	30: "fishing",
	36: "sailing",
	37: "pleasure craft",
	60: "passenger",
	70: "cargo",
	80: "tanker",
}

// newVoyageDataClass builds message 5's field table (Static and
// Voyage Related Data, 424 bits, spec §4.4.3).
func newVoyageDataClass() MessageClass {
	return MessageClass{
		ID:   5,
		Name: "Static and Voyage Related Data",
		Bits: 424,
		Fields: []Field{
			{Name: "MessageID", Type: TUint, Width: 6, Default: uint64(5), Auto: true},
			{Name: "RepeatIndicator", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "UserID", Type: TUint, Width: 30},
			{Name: "AISVersion", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "IMONumber", Type: TUint, Width: 30, Default: uint64(0)},
			{Name: "CallSign", Type: TString6, Width: 42, Default: ""},
			{Name: "VesselName", Type: TString6, Width: 120, Default: ""},
			{Name: "ShipType", Type: TUint, Width: 8, Default: uint64(0), Enum: shipTypeEnum},
			{Name: "DimensionToBow", Type: TUint, Width: 9, Default: uint64(0)},
			{Name: "DimensionToStern", Type: TUint, Width: 9, Default: uint64(0)},
			{Name: "DimensionToPort", Type: TUint, Width: 6, Default: uint64(0)},
			{Name: "DimensionToStarboard", Type: TUint, Width: 6, Default: uint64(0)},
			{Name: "fixtype", Type: TUint, Width: 4, Default: uint64(0), Enum: epfdEnum},
			{Name: "ETA_month", Type: TUint, Width: 4, Default: uint64(0)},
			{Name: "ETA_day", Type: TUint, Width: 5, Default: uint64(0)},
			{Name: "ETA_hour", Type: TUint, Width: 5, Default: uint64(24)},
			{Name: "ETA_minute", Type: TUint, Width: 6, Default: uint64(60)},
			{Name: "Draught", Type: TUDecimal, Width: 8, Scale: 10, Default: float64(0)},
			{Name: "Destination", Type: TString6, Width: 120, Default: ""},
			{Name: "DTE", Type: TBool, Width: 1, Default: false},
			{Name: "Spare", Type: TUint, Width: 1, Default: uint64(0), Auto: true},
		},
	}
}
