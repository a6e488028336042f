// Package airquality converts pollutant concentrations into AQI scores and
// rule-based health recommendations, and fetches the weather and air-quality
// data they are computed from.
package airquality

import (
	"math"

	"healieve/health-app/internal/domain"
)

// breakpoint is one row of an EPA AQI table: concentrations in [Cl, Ch]
// map linearly onto AQI values [Il, Ih]. Hi is the selection bound; the last
// row catches everything above the highest defined Hi.
type breakpoint struct {
	Hi     float64
	Il, Ih float64
	Cl, Ch float64
}

var pm25Breakpoints = []breakpoint{
	{Hi: 12, Il: 0, Ih: 50, Cl: 0.0, Ch: 12.0},
	{Hi: 35.4, Il: 51, Ih: 100, Cl: 12.1, Ch: 35.4},
	{Hi: 55.4, Il: 101, Ih: 150, Cl: 35.5, Ch: 55.4},
	{Hi: 150.4, Il: 151, Ih: 200, Cl: 55.5, Ch: 150.4},
	{Hi: 250.4, Il: 201, Ih: 300, Cl: 150.5, Ch: 250.4},
	{Hi: 350.4, Il: 301, Ih: 400, Cl: 250.5, Ch: 350.4},
	{Hi: 500.4, Il: 401, Ih: 500, Cl: 350.5, Ch: 500.4},
}

var pm10Breakpoints = []breakpoint{
	{Hi: 54, Il: 0, Ih: 50, Cl: 0, Ch: 54},
	{Hi: 154, Il: 51, Ih: 100, Cl: 55, Ch: 154},
	{Hi: 254, Il: 101, Ih: 150, Cl: 155, Ch: 254},
	{Hi: 354, Il: 151, Ih: 200, Cl: 255, Ch: 354},
	{Hi: 424, Il: 201, Ih: 300, Cl: 355, Ch: 424},
	{Hi: 504, Il: 301, Ih: 400, Cl: 425, Ch: 504},
	{Hi: 604, Il: 401, Ih: 500, Cl: 505, Ch: 604},
}

func interpolate(c *float64, table []breakpoint) int {
	if c == nil {
		return 0
	}
	seg := table[len(table)-1]
	for _, b := range table {
		if *c <= b.Hi {
			seg = b
			break
		}
	}
	aqi := (seg.Ih-seg.Il)/(seg.Ch-seg.Cl)*(*c-seg.Cl) + seg.Il
	return int(math.Round(aqi))
}

// AQIFromPM25 computes the AQI contribution of a PM2.5 concentration.
// A nil (unknown) concentration yields 0.
func AQIFromPM25(c *float64) int { return interpolate(c, pm25Breakpoints) }

// AQIFromPM10 computes the AQI contribution of a PM10 concentration.
func AQIFromPM10(c *float64) int { return interpolate(c, pm10Breakpoints) }

// bandThresholds pairs the upper AQI bound of each band, in ascending order.
var bandThresholds = []struct {
	Max  int
	Band domain.Band
}{
	{50, domain.BandGood},
	{100, domain.BandModerate},
	{150, domain.BandUnhealthySensitive},
	{200, domain.BandUnhealthy},
	{300, domain.BandVeryUnhealthy},
	{500, domain.BandHazardous},
}

// BandFor classifies an AQI score. Scores above 500 stay Hazardous.
func BandFor(aqi int) domain.Band {
	for _, t := range bandThresholds {
		if aqi <= t.Max {
			return t.Band
		}
	}
	return domain.BandHazardous
}

// Reading derives a composite AQIReading from one sample. The worse
// pollutant dominates.
func Reading(sample domain.AirQualitySample) domain.AQIReading {
	p25 := AQIFromPM25(sample.PM25)
	p10 := AQIFromPM10(sample.PM10)
	aqi := p25
	if p10 > aqi {
		aqi = p10
	}
	return domain.AQIReading{
		AQI:     aqi,
		AQIPM25: p25,
		AQIPM10: p10,
		Band:    BandFor(aqi),
	}
}
