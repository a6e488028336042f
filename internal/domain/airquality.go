package domain

// Band classifies an AQI score into the standard severity levels.
type Band string

const (
	BandGood               Band = "Good"
	BandModerate           Band = "Moderate"
	BandUnhealthySensitive Band = "Unhealthy (SG)"
	BandUnhealthy          Band = "Unhealthy"
	BandVeryUnhealthy      Band = "Very Unhealthy"
	BandHazardous          Band = "Hazardous"
)

// AirQualitySample holds raw pollutant concentrations in µg/m³.
// Nil means the value is unknown for that hour.
type AirQualitySample struct {
	PM25 *float64 `json:"pm2_5"`
	PM10 *float64 `json:"pm10"`
}

// AQIReading is the derived composite score for one sample. It is recomputed
// per sample and never persisted.
type AQIReading struct {
	AQI     int  `json:"aqi"`
	AQIPM25 int  `json:"aqiPm25"`
	AQIPM10 int  `json:"aqiPm10"`
	Band    Band `json:"band"`
}

// WeatherNow is the current-conditions slice of a forecast response.
type WeatherNow struct {
	TempC    *float64 `json:"tempC"`
	WindKph  *float64 `json:"windKph"`
	WindDeg  *float64 `json:"windDeg"`
	Humidity *float64 `json:"humidity"`
}

// Advisory is the full payload returned by the advisory endpoint: current
// weather, the AQI reading, and the ordered recommendation list, plus the
// 24h trend/forecast series used by the client charts.
type Advisory struct {
	Weather         WeatherNow       `json:"weather"`
	Sample          AirQualitySample `json:"sample"`
	Reading         AQIReading       `json:"reading"`
	Recommendations []string         `json:"recommendations"`
	Trend           ChartSeries      `json:"trend"`
	Forecast        ChartSeries      `json:"forecast"`
}
