package matching

import (
	"math"

	"dental-navigator/internal/domain/entity"
)

const earthRadiusMiles = 3958.8

// DistanceMiles returns the great-circle (haversine) distance between two
// points given in decimal degrees.
func DistanceMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadiusMiles converts travel mode + time preferences into a max radius in
// miles. Speeds are rough estimates for Maryland geography. A missing mode
// defaults to NOT_SURE and a missing time to a 60-minute budget.
func RadiusMiles(mode *entity.TravelMode, travelTime *entity.TravelTime) float64 {
	speed := 25.0 // NOT_SURE
	if mode != nil {
		switch *mode {
		case entity.TravelDrives, entity.TravelRideFromSomeone:
			speed = 30
		case entity.TravelPublicTransit:
			speed = 15
		case entity.TravelWalkOnly:
			speed = 3
		}
	}

	hours := 1.0 // UP_TO_60_MIN
	if travelTime != nil {
		switch *travelTime {
		case entity.TravelUpTo15Min:
			hours = 0.25
		case entity.TravelUpTo30Min:
			hours = 0.5
		case entity.TravelUpTo60Min:
			hours = 1.0
		case entity.TravelAnyDistance:
			hours = 2.0
		}
	}

	return speed * hours
}
