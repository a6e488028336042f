package airquality

import (
	"testing"

	"healieve/health-app/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func TestAQIFromPM25(t *testing.T) {
	cases := []struct {
		c    *float64
		want int
	}{
		{nil, 0},
		{fptr(0), 0},
		{fptr(10), 42},  // within [0,12] -> [0,50]
		{fptr(12), 50},  // top of first segment
		{fptr(40), 112}, // within [35.5,55.4] -> [101,150]
	}
	for _, tc := range cases {
		if got := AQIFromPM25(tc.c); got != tc.want {
			t.Fatalf("AQIFromPM25(%v) = %d, want %d", tc.c, got, tc.want)
		}
	}
	// values above the highest Hi fall through to the last row
	if got := AQIFromPM25(fptr(1000)); got <= 500 {
		t.Fatalf("AQIFromPM25(1000) = %d, want >500 via overflow row", got)
	}
}

func TestAQIFromPM10(t *testing.T) {
	if got := AQIFromPM10(nil); got != 0 {
		t.Fatalf("nil concentration should give 0, got %d", got)
	}
	if got := AQIFromPM10(fptr(54)); got != 50 {
		t.Fatalf("AQIFromPM10(54) = %d, want 50", got)
	}
	// 100 within [55,154] -> [51,100]: 49/99*45+51 = 73.27 -> 73
	if got := AQIFromPM10(fptr(100)); got != 73 {
		t.Fatalf("AQIFromPM10(100) = %d, want 73", got)
	}
}

func TestBandFor(t *testing.T) {
	cases := []struct {
		aqi  int
		want domain.Band
	}{
		{0, domain.BandGood},
		{50, domain.BandGood},
		{51, domain.BandModerate},
		{100, domain.BandModerate},
		{112, domain.BandUnhealthySensitive},
		{180, domain.BandUnhealthy},
		{250, domain.BandVeryUnhealthy},
		{500, domain.BandHazardous},
		{620, domain.BandHazardous},
	}
	for _, tc := range cases {
		if got := BandFor(tc.aqi); got != tc.want {
			t.Fatalf("BandFor(%d) = %s, want %s", tc.aqi, got, tc.want)
		}
	}
}

func TestReading_WorsePollutantDominates(t *testing.T) {
	r := Reading(domain.AirQualitySample{PM25: fptr(10), PM10: fptr(200)})
	if r.AQIPM25 != 42 {
		t.Fatalf("pm2.5 sub-index = %d, want 42", r.AQIPM25)
	}
	if r.AQI != r.AQIPM10 {
		t.Fatalf("composite should take the larger sub-index, got %d (pm10=%d)", r.AQI, r.AQIPM10)
	}
	if r.Band != BandFor(r.AQI) {
		t.Fatalf("band %s inconsistent with AQI %d", r.Band, r.AQI)
	}
}

func TestReading_AllUnknown(t *testing.T) {
	r := Reading(domain.AirQualitySample{})
	if r.AQI != 0 || r.Band != domain.BandGood {
		t.Fatalf("unknown sample should read AQI 0 / Good, got %+v", r)
	}
}
