// Package geo evaluates the geospatial predicates of the discovery path:
// great-circle distance, polygon containment and the bounding-box prefilter.
// It never mutates state.
package geo

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/GlebRadaev/dealmap/internal/domain"
)

const (
	earthRadiusKm = 6371.0088

	// Degrees-per-km approximations used only for the rectangular prefilter;
	// the exact haversine test follows.
	kmPerDegLat = 110.574
	kmPerDegLng = 111.320
)

type BBox struct {
	MinLng float64
	MinLat float64
	MaxLng float64
	MaxLat float64
}

// DistanceKm returns the great-circle distance between two points.
func DistanceKm(a, b domain.Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// BoundingBox returns the rectangle of radiusKm around p.
func BoundingBox(p domain.Point, radiusKm float64) BBox {
	dLat := radiusKm / kmPerDegLat
	dLng := radiusKm / (kmPerDegLng * math.Cos(p.Lat*math.Pi/180))

	return BBox{
		MinLng: p.Lng - dLng,
		MinLat: p.Lat - dLat,
		MaxLng: p.Lng + dLng,
		MaxLat: p.Lat + dLat,
	}
}

// PolygonContains reports whether p lies inside the polygon's outer ring.
// Points exactly on an edge count as inside.
func PolygonContains(poly domain.Polygon, p domain.Point) bool {
	ring := poly.Ring
	if len(ring) < 4 {
		return false
	}

	inside := false
	for i := 0; i < len(ring)-1; i++ {
		a, b := ring[i], ring[i+1]
		if onSegment(a, b, p) {
			return true
		}
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) {
			x := a.Lng + (p.Lat-a.Lat)*(b.Lng-a.Lng)/(b.Lat-a.Lat)
			if p.Lng < x {
				inside = !inside
			}
		}
	}
	return inside
}

const segmentEps = 1e-12

func onSegment(a, b, p domain.Point) bool {
	cross := (b.Lng-a.Lng)*(p.Lat-a.Lat) - (b.Lat-a.Lat)*(p.Lng-a.Lng)
	if math.Abs(cross) > segmentEps {
		return false
	}
	return p.Lng >= math.Min(a.Lng, b.Lng)-segmentEps &&
		p.Lng <= math.Max(a.Lng, b.Lng)+segmentEps &&
		p.Lat >= math.Min(a.Lat, b.Lat)-segmentEps &&
		p.Lat <= math.Max(a.Lat, b.Lat)+segmentEps
}

// CirclePolygon approximates a circle of radiusKm around center, closed per
// the GeoJSON convention (first vertex repeated last, counterclockwise).
func CirclePolygon(center domain.Point, radiusKm float64, points int) domain.Polygon {
	dLng := radiusKm / (kmPerDegLng * math.Cos(center.Lat*math.Pi/180))
	dLat := radiusKm / kmPerDegLat

	ring := make([]domain.Point, 0, points+1)
	for i := 0; i < points; i++ {
		theta := float64(i) / float64(points) * 2 * math.Pi
		ring = append(ring, domain.Point{
			Lng: center.Lng + dLng*math.Cos(theta),
			Lat: center.Lat + dLat*math.Sin(theta),
		})
	}
	ring = append(ring, ring[0])

	return domain.Polygon{Ring: ring}
}

// ValidateQuery checks a discovery query's inputs.
func ValidateQuery(p domain.Point, radiusKm float64) error {
	if !p.Valid() {
		return fmt.Errorf("%w: bad point (%v, %v)", domain.ErrInvalidQuery, p.Lng, p.Lat)
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return fmt.Errorf("%w: bad radius %v", domain.ErrInvalidQuery, radiusKm)
	}
	return nil
}

// DealsWithin filters candidates down to deals that are joinable at now,
// within radiusKm of p, and whose service area contains p. Results are
// ordered by ascending distance from p, ties broken by ascending id.
func DealsWithin(p domain.Point, radiusKm float64, now time.Time, candidates []domain.Deal) ([]domain.Deal, error) {
	if err := ValidateQuery(p, radiusKm); err != nil {
		return nil, err
	}

	type hit struct {
		deal domain.Deal
		dist float64
	}
	var hits []hit
	for _, d := range candidates {
		if !d.Joinable(now) {
			continue
		}
		dist := DistanceKm(p, d.Location)
		if dist > radiusKm {
			continue
		}
		if !PolygonContains(d.ServiceArea, p) {
			continue
		}
		hits = append(hits, hit{deal: d, dist: dist})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].deal.ID < hits[j].deal.ID
	})

	deals := make([]domain.Deal, 0, len(hits))
	for _, h := range hits {
		deals = append(deals, h.deal)
	}
	return deals, nil
}
