package domain

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	// Kadikoy to Besiktas, roughly 5.9 km across the Bosphorus.
	got := HaversineKm(40.9929, 29.0282, 41.0430, 29.0061)
	if got < 5 || got > 7 {
		t.Errorf("HaversineKm = %f, expected around 5.9", got)
	}

	if d := HaversineKm(41.0, 29.0, 41.0, 29.0); d != 0 {
		t.Errorf("distance to self = %f, want 0", d)
	}
}

func TestClosestDistrict(t *testing.T) {
	districts := []District{
		{ID: 1, Name: "Kadikoy", Latitude: 40.9929, Longitude: 29.0282},
		{ID: 2, Name: "Besiktas", Latitude: 41.0430, Longitude: 29.0061},
		{ID: 3, Name: "Bakirkoy", Latitude: 40.9819, Longitude: 28.8772},
	}

	id, ok := ClosestDistrict(41.044, 29.007, districts)
	if !ok || id != 2 {
		t.Errorf("ClosestDistrict near Besiktas = (%d, %v), want (2, true)", id, ok)
	}

	id, ok = ClosestDistrict(40.98, 28.88, districts)
	if !ok || id != 3 {
		t.Errorf("ClosestDistrict near Bakirkoy = (%d, %v), want (3, true)", id, ok)
	}

	if _, ok := ClosestDistrict(41.0, 29.0, nil); ok {
		t.Error("ClosestDistrict with no districts should report false")
	}

	if math.IsNaN(HaversineKm(90, 0, -90, 0)) {
		t.Error("antipodal distance is NaN")
	}
}
