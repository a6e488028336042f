package airquality

import (
	"testing"

	"healieve/health-app/internal/domain"
)

func calmFreeWeather() domain.WeatherNow {
	// wind high enough that the stagnation rule stays quiet
	return domain.WeatherNow{WindKph: fptr(12)}
}

func TestAdvise_GoodAirSingleMessage(t *testing.T) {
	got := Advise(domain.AQIReading{AQI: 42, Band: domain.BandGood}, calmFreeWeather(), domain.AirQualitySample{})
	if len(got) != 1 || got[0] != msgGood {
		t.Fatalf("expected only the good-air message, got %v", got)
	}
}

func TestAdvise_AQIRangesAreExclusive(t *testing.T) {
	cases := []struct {
		aqi  int
		want string
	}{
		{10, msgGood},
		{75, msgModerate},
		{125, msgSensitive},
		{175, msgUnhealthy},
		{250, msgVeryUnhealthy},
		{450, msgHazardous},
	}
	for _, tc := range cases {
		got := Advise(domain.AQIReading{AQI: tc.aqi}, calmFreeWeather(), domain.AirQualitySample{})
		if len(got) != 1 || got[0] != tc.want {
			t.Fatalf("AQI %d: got %v, want exactly [%q]", tc.aqi, got, tc.want)
		}
	}
}

func TestAdvise_IndependentRulesStack(t *testing.T) {
	weather := domain.WeatherNow{Humidity: fptr(80), WindKph: fptr(3)}
	sample := domain.AirQualitySample{PM25: fptr(40), PM10: fptr(200)}
	got := Advise(domain.AQIReading{AQI: 160}, weather, sample)

	want := []string{msgUnhealthy, msgHumidity, msgStagnation, msgPM25, msgPM10}
	if len(got) != len(want) {
		t.Fatalf("got %d messages, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d = %q, want %q (order must follow rule order)", i, got[i], want[i])
		}
	}
}

func TestAdvise_UnknownWindCountsAsCalm(t *testing.T) {
	got := Advise(domain.AQIReading{AQI: 10}, domain.WeatherNow{}, domain.AirQualitySample{})
	if len(got) != 2 || got[1] != msgStagnation {
		t.Fatalf("unknown wind should trigger the stagnation note, got %v", got)
	}
}

func TestAdvise_ThresholdBoundaries(t *testing.T) {
	// humidity rule is >=, pollutant rules are strict >
	got := Advise(domain.AQIReading{AQI: 10}, domain.WeatherNow{Humidity: fptr(75), WindKph: fptr(10)},
		domain.AirQualitySample{PM25: fptr(35), PM10: fptr(150)})
	if len(got) != 2 || got[1] != msgHumidity {
		t.Fatalf("only good-air and humidity messages expected at the boundaries, got %v", got)
	}
}
