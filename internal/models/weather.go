package models

// CurrentWeather holds current conditions as reported by wttr.in.
// Values are kept as the strings the API returns.
type CurrentWeather struct {
	Area          string
	Latitude      string
	Longitude     string
	Description   string
	TempC         string
	FeelsLikeC    string
	Pressure      string
	Humidity      string
	WindSpeedKmph string
}
