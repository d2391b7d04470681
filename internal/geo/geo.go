package geo

import "math"

const earthRadiusKm = 6371.0

// Point is a WGS84 coordinate pair in degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p Point) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// Bounds is a rectangle given by its south-west and north-east corners.
type Bounds struct {
	SouthWest Point `json:"southWest"`
	NorthEast Point `json:"northEast"`
}

func (b Bounds) Extend(p Point) Bounds {
	if p.Latitude < b.SouthWest.Latitude {
		b.SouthWest.Latitude = p.Latitude
	}
	if p.Latitude > b.NorthEast.Latitude {
		b.NorthEast.Latitude = p.Latitude
	}
	if p.Longitude < b.SouthWest.Longitude {
		b.SouthWest.Longitude = p.Longitude
	}
	if p.Longitude > b.NorthEast.Longitude {
		b.NorthEast.Longitude = p.Longitude
	}
	return b
}

func (b Bounds) Center() Point {
	return Point{
		Latitude:  (b.SouthWest.Latitude + b.NorthEast.Latitude) / 2,
		Longitude: (b.SouthWest.Longitude + b.NorthEast.Longitude) / 2,
	}
}

// FitBounds returns the smallest bounds containing all points.
// The second return value is false when the slice is empty.
func FitBounds(points []Point) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}

	b := Bounds{SouthWest: points[0], NorthEast: points[0]}
	for _, p := range points[1:] {
		b = b.Extend(p)
	}

	return b, true
}

// Haversine calculates the great-circle distance in meters between two points.
func Haversine(a, b Point) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c * 1000 // meters
}

// BoundingBox returns a bounding box around a point with the given radius in meters.
func BoundingBox(center Point, radiusMeters float64) Bounds {
	latDelta := radiusMeters / 111320.0
	lonDelta := radiusMeters / (111320.0 * math.Cos(toRad(center.Latitude)))

	return Bounds{
		SouthWest: Point{Latitude: center.Latitude - latDelta, Longitude: center.Longitude - lonDelta},
		NorthEast: Point{Latitude: center.Latitude + latDelta, Longitude: center.Longitude + lonDelta},
	}
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
