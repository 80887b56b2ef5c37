package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Point is a GeoJSON Point in WGS84, coordinates ordered [lng, lat].
type Point struct {
	Lng float64
	Lat float64
}

// Polygon is a GeoJSON Polygon in WGS84: an outer ring whose first and last
// vertices coincide. Holes are not supported.
type Polygon struct {
	Ring []Point
}

var (
	ErrBadGeoJSON = errors.New("malformed geojson")
)

type geoJSON struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string     `json:"type"`
		Coordinates [2]float64 `json:"coordinates"`
	}{Type: "Point", Coordinates: [2]float64{p.Lng, p.Lat}})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var raw geoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrBadGeoJSON, err)
	}
	if raw.Type != "Point" {
		return fmt.Errorf("%w: want Point, got %q", ErrBadGeoJSON, raw.Type)
	}
	var coords [2]float64
	if err := json.Unmarshal(raw.Coordinates, &coords); err != nil {
		return fmt.Errorf("%w: %v", ErrBadGeoJSON, err)
	}
	p.Lng, p.Lat = coords[0], coords[1]
	return nil
}

// Valid reports whether both coordinates are finite and inside WGS84 bounds.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) || math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) {
		return false
	}
	return p.Lng >= -180 && p.Lng <= 180 && p.Lat >= -90 && p.Lat <= 90
}

func (pg Polygon) MarshalJSON() ([]byte, error) {
	ring := make([][2]float64, 0, len(pg.Ring))
	for _, v := range pg.Ring {
		ring = append(ring, [2]float64{v.Lng, v.Lat})
	}
	return json.Marshal(struct {
		Type        string         `json:"type"`
		Coordinates [][][2]float64 `json:"coordinates"`
	}{Type: "Polygon", Coordinates: [][][2]float64{ring}})
}

func (pg *Polygon) UnmarshalJSON(data []byte) error {
	var raw geoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrBadGeoJSON, err)
	}
	if raw.Type != "Polygon" {
		return fmt.Errorf("%w: want Polygon, got %q", ErrBadGeoJSON, raw.Type)
	}
	var rings [][][2]float64
	if err := json.Unmarshal(raw.Coordinates, &rings); err != nil {
		return fmt.Errorf("%w: %v", ErrBadGeoJSON, err)
	}
	if len(rings) == 0 {
		return fmt.Errorf("%w: polygon has no rings", ErrBadGeoJSON)
	}
	ring := make([]Point, 0, len(rings[0]))
	for _, c := range rings[0] {
		ring = append(ring, Point{Lng: c[0], Lat: c[1]})
	}
	pg.Ring = ring
	return nil
}

// Valid reports whether the outer ring is closed, has at least four vertices
// and contains only valid points.
func (pg Polygon) Valid() bool {
	if len(pg.Ring) < 4 {
		return false
	}
	for _, v := range pg.Ring {
		if !v.Valid() {
			return false
		}
	}
	first, last := pg.Ring[0], pg.Ring[len(pg.Ring)-1]
	return first.Lng == last.Lng && first.Lat == last.Lat
}
