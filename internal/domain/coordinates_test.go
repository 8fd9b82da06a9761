package domain

import (
	"errors"
	"math"
	"testing"
)

func TestDistanceKmSymmetryAndIdentity(t *testing.T) {
	sf := Coordinate{Lat: 37.7749, Lon: -122.4194}
	paloAlto := Coordinate{Lat: 37.4419, Lon: -122.1430}

	if d := sf.DistanceKm(sf); d != 0 {
		t.Fatalf("distance to self = %v, want 0", d)
	}

	ab := sf.DistanceKm(paloAlto)
	ba := paloAlto.DistanceKm(sf)
	if ab != ba {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}

	// SF downtown to Palo Alto is roughly 44 km as the crow flies.
	if ab < 40 || ab > 50 {
		t.Fatalf("distance = %v km, want roughly 44", ab)
	}
}

func TestTravelTimeMinutes(t *testing.T) {
	// 40 km at 40 km/h is exactly one hour.
	if m := TravelTimeMinutes(40, 40); m != 60 {
		t.Fatalf("travel time = %v, want 60", m)
	}
	if m := TravelTimeMinutes(0, 40); m != 0 {
		t.Fatalf("travel time = %v, want 0", m)
	}
}

func TestCoordinateValidate(t *testing.T) {
	cases := []struct {
		name    string
		coord   Coordinate
		wantErr bool
	}{
		{"valid", Coordinate{Lat: 37.77, Lon: -122.42}, false},
		{"lat out of range", Coordinate{Lat: 91, Lon: 0}, true},
		{"lon out of range", Coordinate{Lat: 0, Lon: -181}, true},
		{"nan lat", Coordinate{Lat: math.NaN(), Lon: 0}, true},
		{"nan lon", Coordinate{Lat: 0, Lon: math.NaN()}, true},
	}

	for _, tc := range cases {
		err := tc.coord.Validate()
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
		if tc.wantErr {
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("%s: error %v is not a ConfigurationError", tc.name, err)
			}
		}
	}
}
