package domain

import "math"

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two coordinates in
// kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// ClosestDistrict returns the id of the district nearest to the given point.
// The second return is false when the slice is empty.
func ClosestDistrict(lat, lon float64, districts []District) (int64, bool) {
	if len(districts) == 0 {
		return 0, false
	}

	best := districts[0].ID
	bestDist := HaversineKm(lat, lon, districts[0].Latitude, districts[0].Longitude)
	for _, d := range districts[1:] {
		dist := HaversineKm(lat, lon, d.Latitude, d.Longitude)
		if dist < bestDist {
			bestDist = dist
			best = d.ID
		}
	}
	return best, true
}
