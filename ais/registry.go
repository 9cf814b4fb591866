package ais

import "sort"

// registry holds every known MessageClass, keyed by ID, populated once
// at init time and never mutated afterward (spec §4.4: "the codec is
// table-driven... adding a class is a data addition").
var registry map[uint8]MessageClass

func init() {
	classes := []MessageClass{
		newPosReportClass(1, "Position Report Class A"),
		newPosReportClass(2, "Position Report Class A (Scheduled)"),
		newPosReportClass(3, "Position Report Class A (Response to Interrogation)"),
		newBaseStationClass(4, "Base Station Report"),
		newVoyageDataClass(),
		newBinAckClass(),
		newSARPositionClass(),
		newBaseStationClass(11, "UTC and Date Response"),
		newAddressedSafetyClass(),
		newBroadcastSafetyClass(),
		newClassBPositionClass(),
		newClassBExtendedClass(),
		newAidNavClass(),
		newStaticDataReportClass(),
	}

	registry = make(map[uint8]MessageClass, len(classes))
	for _, c := range classes {
		registry[c.ID] = c
	}
}

// ClassByID looks up a MessageClass by its numeric ID.
func ClassByID(id uint8) (MessageClass, bool) {
	c, ok := registry[id]
	return c, ok
}

// Registry returns a snapshot of the full class table, keyed by
// message ID. The returned map is a copy; mutating it has no effect
// on the package's internal registry.
func Registry() map[uint8]MessageClass {
	out := make(map[uint8]MessageClass, len(registry))
	for id, c := range registry {
		out[id] = c
	}
	return out
}

// Classes returns every registered MessageClass, ordered by ID.
func Classes() []MessageClass {
	ids := make([]uint8, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]MessageClass, len(ids))
	for i, id := range ids {
		out[i] = registry[id]
	}
	return out
}
