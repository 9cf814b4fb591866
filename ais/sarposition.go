package ais

// newSARPositionClass builds message 9's field table (SAR Aircraft
// Position Report, 168 bits, spec §4.4.3, scenario S2).
func newSARPositionClass() MessageClass {
	return MessageClass{
		ID:   9,
		Name: "SAR Aircraft Position Report",
		Bits: 168,
		Fields: []Field{
			{Name: "MessageID", Type: TUint, Width: 6, Default: uint64(9), Auto: true},
			{Name: "RepeatIndicator", Type: TUint, Width: 2, Default: uint64(0)},
			{Name: "UserID", Type: TUint, Width: 30},
			{Name: "Altitude", Type: TUint, Width: 12, Default: uint64(4095)},
			// SOG here is a raw knots count, not scale-10 like the Class
			// A/B position reports (ais_msg_9.py: BitVector(intVal=SOG, 10),
			// no scaling): 1023 = not available.
			{Name: "SOG", Type: TUint, Width: 10, Default: uint64(1023)},
			{Name: "PositionAccuracy", Type: TBool, Width: 1, Default: false},
			{Name: "Position_longitude", Type: TDecimal, Width: 28, Scale: 600000, Default: float64(181)},
			{Name: "Position_latitude", Type: TDecimal, Width: 27, Scale: 600000, Default: float64(91)},
			{Name: "COG", Type: TUDecimal, Width: 12, Scale: 10, Default: float64(360)},
			{Name: "TimeStamp", Type: TUint, Width: 6, Default: uint64(60)},
			{Name: "Reserved", Type: TUint, Width: 8, Default: uint64(0), Auto: true},
			{Name: "DTE", Type: TBool, Width: 1, Default: false},
			{Name: "Spare", Type: TUint, Width: 3, Default: uint64(0), Auto: true},
			{Name: "AssignedMode", Type: TBool, Width: 1, Default: false},
			{Name: "RAIM", Type: TBool, Width: 1, Default: false},
			{Name: "CommStateSelector", Type: TUint, Width: 1, Default: uint64(0)},
			{Name: "CommState", Type: TCommState, Width: CommStateBits},
		},
	}
}
