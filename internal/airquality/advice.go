package airquality

import "healieve/health-app/internal/domain"

// Advisory messages. Each rule owns exactly one message, so the output needs
// no deduplication.
const (
	msgGood          = "Air quality is good. Outdoor activities are safe."
	msgModerate      = "Sensitive groups should limit prolonged outdoor exertion."
	msgSensitive     = "Consider N95 mask outdoors. Reduce long outdoor workouts."
	msgUnhealthy     = "Avoid outdoor exercise; keep windows closed; use HEPA air purifier."
	msgVeryUnhealthy = "Stay indoors if possible. Use N95/N99 mask when going out."
	msgHazardous     = "Hazardous air. Remain indoors with filtered air; avoid all exertion."
	msgHumidity      = "High humidity can worsen perceived pollution—hydrate well."
	msgStagnation    = "Low wind → stagnation; pollution may linger longer."
	msgPM25          = "PM2.5 elevated—risk to lungs. Consider indoor activities."
	msgPM10          = "PM10 is high—dust exposure likely. Keep masks handy."
)

// Advise evaluates the advisory rules in fixed order. The six AQI-range rules
// are mutually exclusive; the humidity, wind, and pollutant rules fire
// independently, so several messages may be returned together. Unknown wind
// counts as calm (the stagnation rule fires); unknown humidity and pollutant
// values leave their rules silent.
func Advise(reading domain.AQIReading, weather domain.WeatherNow, sample domain.AirQualitySample) []string {
	var list []string

	aqi := reading.AQI
	switch {
	case aqi <= 50:
		list = append(list, msgGood)
	case aqi <= 100:
		list = append(list, msgModerate)
	case aqi <= 150:
		list = append(list, msgSensitive)
	case aqi <= 200:
		list = append(list, msgUnhealthy)
	case aqi <= 300:
		list = append(list, msgVeryUnhealthy)
	default:
		list = append(list, msgHazardous)
	}

	if weather.Humidity != nil && *weather.Humidity >= 75 {
		list = append(list, msgHumidity)
	}
	wind := 0.0
	if weather.WindKph != nil {
		wind = *weather.WindKph
	}
	if wind < 5 {
		list = append(list, msgStagnation)
	}
	if sample.PM25 != nil && *sample.PM25 > 35 {
		list = append(list, msgPM25)
	}
	if sample.PM10 != nil && *sample.PM10 > 150 {
		list = append(list, msgPM10)
	}

	return list
}
