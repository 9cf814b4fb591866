package ais

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

// Position is a decoded longitude/latitude pair, in degrees, as
// carried by Position_longitude/Position_latitude fields.
type Position struct {
	LongitudeDeg float64
	LatitudeDeg  float64
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// LatLng converts a Position to an s2.LatLng, the representation the
// rest of the geo/coordconv stack operates on.
func (p Position) LatLng() s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(degToRad(p.LatitudeDeg)),
		Lng: s1.Angle(degToRad(p.LongitudeDeg)),
	}
}

// UTM converts the position to a UTM coordinate for display, the same
// conversion path the command-line coordinate tools use.
func (p Position) UTM() (coordconv.UTMCoord, error) {
	return coordconv.DefaultUTMConverter.ConvertFromGeodetic(p.LatLng(), 0)
}

// FormatUTM renders the position's UTM coordinate as "zone hemisphere
// easting northing", e.g. "10N 551234 4181234", where the letter is
// the hemisphere (N or S).
func FormatUTM(p Position) (string, error) {
	coord, err := p.UTM()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d%c %.0f %.0f", coord.Zone, hemisphereToRune(coord.Hemisphere), coord.Easting, coord.Northing), nil
}

// hemisphereToRune renders a coordconv.Hemisphere as its conventional
// single-letter suffix.
func hemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	default:
		return '?'
	}
}

// MGRS renders the position as an MGRS grid reference at the given
// precision (1-5 digits per axis).
func (p Position) MGRS(precision int) (string, error) {
	coord, err := coordconv.DefaultMGRSConverter.ConvertFromGeodetic(p.LatLng(), precision)
	if err != nil {
		return "", err
	}
	return coord, nil
}

// FormatDM renders a position in degrees-and-decimal-minutes form,
// e.g. "34 05.678 N 122 09.797 W", the conventional marine navigation
// display format for AIS position reports.
func FormatDM(p Position) string {
	return fmt.Sprintf("%s %s", formatAxisDM(p.LatitudeDeg, 'N', 'S'), formatAxisDM(p.LongitudeDeg, 'E', 'W'))
}

func formatAxisDM(deg float64, positive, negative rune) string {
	hemi := positive
	if deg < 0 {
		hemi = negative
		deg = -deg
	}
	whole := math.Floor(deg)
	minutes := (deg - whole) * 60
	return fmt.Sprintf("%d %06.3f %c", int(whole), minutes, hemi)
}

// PositionFromRecord extracts a Position from a decoded Record's
// Position_longitude/Position_latitude Decimal fields, if present.
func PositionFromRecord(r *Record) (Position, bool) {
	lonAny, ok := r.Get("Position_longitude")
	if !ok {
		return Position{}, false
	}
	latAny, ok := r.Get("Position_latitude")
	if !ok {
		return Position{}, false
	}
	lon, ok := lonAny.(Decimal)
	if !ok {
		return Position{}, false
	}
	lat, ok := latAny.(Decimal)
	if !ok {
		return Position{}, false
	}
	return Position{LongitudeDeg: lon.Float64(), LatitudeDeg: lat.Float64()}, true
}
