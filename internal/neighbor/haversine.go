package neighbor

import (
	"math"

	"github.com/integeruser/closedmdcop-miner/internal/instance"
)

// earthRadiusKM is the mean Earth radius used by the great-circle distance,
// matching the original implementation's constant.
const earthRadiusKM = 6371.0

// Haversine is a Predicate treating Instance.X as latitude and Instance.Y
// as longitude (both in degrees) and comparing great-circle distance, in
// kilometers, against a threshold.
type Haversine struct {
	thresholdKM float64
}

// NewHaversine builds a Haversine predicate for the given distance
// threshold dt (dt > 0), in kilometers.
func NewHaversine(dt float64) *Haversine {
	return &Haversine{thresholdKM: dt}
}

// Neighbors reports whether a and b are within the configured great-circle
// distance of each other. See http://www.movable-type.co.uk/scripts/latlong.html.
func (h *Haversine) Neighbors(a, b *instance.Instance) bool {
	lat1, lat2 := degToRad(a.X), degToRad(b.X)
	dphi := degToRad(b.X - a.X)
	dlambda := degToRad(b.Y - a.Y)

	sinDPhi := math.Sin(dphi / 2)
	sinDLambda := math.Sin(dlambda / 2)
	x := sinDPhi*sinDPhi + math.Cos(lat1)*math.Cos(lat2)*sinDLambda*sinDLambda
	c := 2 * math.Atan2(math.Sqrt(x), math.Sqrt(1-x))

	return earthRadiusKM*c <= h.thresholdKM
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
