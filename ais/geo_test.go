package ais

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionLatLngConvertsDegreesToRadians(t *testing.T) {
	p := Position{LongitudeDeg: -71.365553, LatitudeDeg: 42.662139}
	ll := p.LatLng()
	assert.InDelta(t, degToRad(-71.365553), float64(ll.Lng), 1e-9)
	assert.InDelta(t, degToRad(42.662139), float64(ll.Lat), 1e-9)
}

func TestPositionUTMAndMGRS(t *testing.T) {
	p := Position{LongitudeDeg: -71.365553, LatitudeDeg: 42.662139}

	formatted, err := FormatUTM(p)
	require.NoError(t, err)
	assert.Contains(t, formatted, "N") // northern hemisphere

	mgrs, err := p.MGRS(5)
	require.NoError(t, err)
	assert.NotEmpty(t, mgrs)
}

func TestFormatDM(t *testing.T) {
	p := Position{LongitudeDeg: -122.5, LatitudeDeg: 34.5}
	dm := FormatDM(p)
	assert.True(t, strings.HasSuffix(dm, "W"))
	assert.Contains(t, dm, "N")
}

func TestPositionFromRecord(t *testing.T) {
	r := NewRecord()
	r.Set("Position_longitude", Decimal{Scaled: -73297968, Scale: 600000})
	r.Set("Position_latitude", Decimal{Scaled: 22454750, Scale: 600000})

	pos, ok := PositionFromRecord(r)
	require.True(t, ok)
	assert.InDelta(t, -122.16328, pos.LongitudeDeg, 1e-4)
	assert.InDelta(t, 37.42458, pos.LatitudeDeg, 1e-4)
}

func TestPositionFromRecordMissingField(t *testing.T) {
	r := NewRecord()
	r.Set("Position_longitude", Decimal{Scaled: 0, Scale: 600000})

	_, ok := PositionFromRecord(r)
	assert.False(t, ok)
}
