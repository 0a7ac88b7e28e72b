// Package s2ruler exposes the cheap ruler over s2.LatLng positions from
// github.com/golang/geo.
package s2ruler

import (
	"iter"

	"github.com/golang/geo/s2"

	"github.com/tidwall/cheapruler"
	"github.com/tidwall/cheapruler/simd"
)

// Measure measures s2.LatLng positions with a float64 cheap ruler. It is
// safe for concurrent use.
type Measure struct {
	ruler *cheapruler.Ruler[float64]
}

// WGS84 measures on the WGS84 ellipsoid with the exact arctangent.
var WGS84 = New(cheapruler.WGS84)

// New returns a Measure for ellipsoid e.
func New(e cheapruler.Ellipsoid, opts ...cheapruler.Option) *Measure {
	return &Measure{ruler: cheapruler.New[float64](e, opts...)}
}

// Ruler returns the underlying ruler.
func (m *Measure) Ruler() *cheapruler.Ruler[float64] {
	return m.ruler
}

func toPoint(ll s2.LatLng) cheapruler.Point[float64] {
	return cheapruler.Point[float64]{Lon: ll.Lng.Degrees(), Lat: ll.Lat.Degrees()}
}

func fromPoint(p cheapruler.Point[float64]) s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lon)
}

// Distance returns the distance in meters from a to b.
func (m *Measure) Distance(a, b s2.LatLng) float64 {
	return m.ruler.Distance(toPoint(a), toPoint(b))
}

// Bearing returns the bearing in degrees [0, 360) from a to b.
func (m *Measure) Bearing(a, b s2.LatLng) float64 {
	return m.ruler.Bearing(toPoint(a), toPoint(b))
}

// Destination returns the position meters away from origin along bearing.
func (m *Measure) Destination(origin s2.LatLng, bearing, meters float64) s2.LatLng {
	return fromPoint(m.ruler.Destination(toPoint(origin), bearing, meters))
}

// PointAtRatioBetween interpolates linearly between the coordinates of start
// and end.
func (m *Measure) PointAtRatioBetween(start, end s2.LatLng, ratio float64) s2.LatLng {
	return fromPoint(m.ruler.PointAtRatioBetween(toPoint(start), toPoint(end), ratio))
}

// PointAtDistanceBetween returns the position meters from start towards end.
func (m *Measure) PointAtDistanceBetween(start, end s2.LatLng, meters float64) s2.LatLng {
	return fromPoint(m.ruler.PointAtDistanceBetween(toPoint(start), toPoint(end), meters))
}

// PointsAlongLine yields positions between start and end at most
// maxDistance meters apart. See cheapruler.Ruler.PointsAlongLine.
func (m *Measure) PointsAlongLine(start, end s2.LatLng, maxDistance float64, includeEnds bool) iter.Seq[s2.LatLng] {
	li := m.ruler.PointsAlongLine(toPoint(start), toPoint(end), maxDistance, includeEnds)
	return func(yield func(s2.LatLng) bool) {
		for p := range li.All() {
			if !yield(fromPoint(p)) {
				return
			}
		}
	}
}

// Length returns the length in meters of the path through points.
func (m *Measure) Length(points []s2.LatLng) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += m.Distance(points[i-1], points[i])
	}
	return total
}

// PolylineLength returns the length in meters of line.
func (m *Measure) PolylineLength(line *s2.Polyline) float64 {
	if line == nil {
		return 0
	}
	points := make([]s2.LatLng, len(*line))
	for i, p := range *line {
		points[i] = s2.LatLngFromPoint(p)
	}
	return m.Length(points)
}

// BatchLength measures the path through points on WGS84 with the lane
// parallel float32 kernel. It trades precision for speed on long paths.
func BatchLength(points []s2.LatLng) (float32, error) {
	lons := make([]float32, len(points))
	lats := make([]float32, len(points))
	for i, ll := range points {
		lons[i] = float32(ll.Lng.Degrees())
		lats[i] = float32(ll.Lat.Degrees())
	}
	return simd.Length(lons, lats)
}
