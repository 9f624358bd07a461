package polyline

import (
	"math"
	"testing"
)

func TestDecode_GoogleReferenceExample(t *testing.T) {
	// Reference example from the polyline algorithm documentation.
	points := Decode("_p~iF~ps|U_ulLnnqC_mqNvxq`@")

	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	expected := []Point{
		{Lat: 38.5, Lng: -120.2},
		{Lat: 40.7, Lng: -120.95},
		{Lat: 43.252, Lng: -126.453},
	}

	for i, want := range expected {
		if math.Abs(points[i].Lat-want.Lat) > 1e-5 {
			t.Errorf("point %d: expected lat %f, got %f", i, want.Lat, points[i].Lat)
		}
		if math.Abs(points[i].Lng-want.Lng) > 1e-5 {
			t.Errorf("point %d: expected lng %f, got %f", i, want.Lng, points[i].Lng)
		}
	}
}

func TestDecode_Empty(t *testing.T) {
	if points := Decode(""); points != nil {
		t.Errorf("expected nil for empty input, got %v", points)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	original := []Point{
		{Lat: 52.37403, Lng: 4.88969},
		{Lat: 52.09083, Lng: 5.12222},
		{Lat: 51.92250, Lng: 4.47917},
	}

	decoded := Decode(Encode(original))

	if len(decoded) != len(original) {
		t.Fatalf("expected %d points, got %d", len(original), len(decoded))
	}

	for i := range original {
		if math.Abs(decoded[i].Lat-original[i].Lat) > 1e-5 {
			t.Errorf("point %d: lat mismatch: %f vs %f", i, original[i].Lat, decoded[i].Lat)
		}
		if math.Abs(decoded[i].Lng-original[i].Lng) > 1e-5 {
			t.Errorf("point %d: lng mismatch: %f vs %f", i, original[i].Lng, decoded[i].Lng)
		}
	}
}

func TestDistance_KnownPair(t *testing.T) {
	// Amsterdam Centraal to Utrecht Centraal, roughly 35km apart.
	a := Point{Lat: 52.3791, Lng: 4.9003}
	b := Point{Lat: 52.0894, Lng: 5.1100}

	d := Distance(a, b)
	if d < 34000 || d > 36500 {
		t.Errorf("expected distance around 35km, got %.0fm", d)
	}
}

func TestLength(t *testing.T) {
	points := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 0, Lng: 2},
	}

	// One degree of longitude at the equator is ~111.2km.
	length := Length(points)
	if length < 220000 || length > 224000 {
		t.Errorf("expected ~222km, got %.0fm", length)
	}

	if Length(points[:1]) != 0 {
		t.Error("expected zero length for single point")
	}
}
