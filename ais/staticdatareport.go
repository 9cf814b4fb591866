package ais

import "github.com/rolker/noaadata/bitstream"

// staticDataReportPartAFields and staticDataReportPartBFields are
// message 24's two PartNumber-selected layouts (Static Data Report).
// Unlike every other class, message 24's field set depends on a value
// read partway through the message rather than being fixed up front,
// so it cannot be expressed as a single linear Field table; the
// generic Encode/Decode engine is bypassed in favor of the dedicated
// EncodeStaticDataReport/DecodeStaticDataReport below, which dispatch
// on PartNumber instead of sharing one decode routine with the rest of
// the classes.
var staticDataReportCommon = []Field{
	{Name: "MessageID", Type: TUint, Width: 6, Default: uint64(24), Auto: true},
	{Name: "RepeatIndicator", Type: TUint, Width: 2, Default: uint64(0)},
	{Name: "UserID", Type: TUint, Width: 30},
	{Name: "PartNumber", Type: TUint, Width: 2},
}

var staticDataReportPartAFields = []Field{
	{Name: "VesselName", Type: TString6, Width: 120, Default: ""},
}

var staticDataReportPartBFields = []Field{
	{Name: "ShipType", Type: TUint, Width: 8, Default: uint64(0), Enum: shipTypeEnum},
	{Name: "VendorID", Type: TString6, Width: 42, Default: ""},
	{Name: "CallSign", Type: TString6, Width: 42, Default: ""},
	{Name: "DimensionToBow", Type: TUint, Width: 9, Default: uint64(0)},
	{Name: "DimensionToStern", Type: TUint, Width: 9, Default: uint64(0)},
	{Name: "DimensionToPort", Type: TUint, Width: 6, Default: uint64(0)},
	{Name: "DimensionToStarboard", Type: TUint, Width: 6, Default: uint64(0)},
	{Name: "Spare", Type: TUint, Width: 6, Default: uint64(0), Auto: true},
}

// newStaticDataReportClass registers message 24 with its Part A field
// table for documentation/introspection purposes (Describe, CLI
// --fields); actual encode/decode always goes through
// EncodeStaticDataReport/DecodeStaticDataReport.
func newStaticDataReportClass() MessageClass {
	fields := append(append([]Field{}, staticDataReportCommon...), staticDataReportPartAFields...)
	return MessageClass{
		ID:     24,
		Name:   "Static Data Report",
		Bits:   160,
		Fields: fields,
	}
}

// EncodeStaticDataReport encodes message 24, selecting Part A or Part
// B layout from input["PartNumber"].
func EncodeStaticDataReport(input map[string]any) (*bitstream.Buffer, error) {
	part, ok := asUint64(input["PartNumber"])
	if !ok {
		return nil, MissingFieldError{Field: "PartNumber"}
	}

	buf := bitstream.New()
	for _, f := range staticDataReportCommon {
		value, err := resolveValue(f, input)
		if err != nil {
			return nil, err
		}
		if err := packField(buf, f, value); err != nil {
			return nil, err
		}
	}

	var partFields []Field
	if part == 0 {
		partFields = staticDataReportPartAFields
	} else {
		partFields = staticDataReportPartBFields
	}
	for _, f := range partFields {
		value, err := resolveValue(f, input)
		if err != nil {
			return nil, err
		}
		if err := packField(buf, f, value); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// DecodeStaticDataReport decodes message 24, reading PartNumber out of
// the fixed 40-bit header to select Part A or Part B layout.
func DecodeStaticDataReport(buf *bitstream.Buffer) (*Record, error) {
	record := NewRecord()
	offset := 0
	for _, f := range staticDataReportCommon {
		value, err := unpackField(buf, f, offset, f.Width)
		if err != nil {
			return nil, err
		}
		record.Set(f.Name, value)
		offset += f.Width
	}

	part, _ := record.Get("PartNumber")
	partValue, _ := asUint64(part)

	var partFields []Field
	if partValue == 0 {
		partFields = staticDataReportPartAFields
	} else {
		partFields = staticDataReportPartBFields
	}
	for _, f := range partFields {
		value, err := unpackField(buf, f, offset, f.Width)
		if err != nil {
			return nil, err
		}
		record.Set(f.Name, value)
		offset += f.Width
	}
	return record, nil
}
