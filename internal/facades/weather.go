package facades

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/gw-api-tools/internal/classifier"
	"github.com/sbilibin2017/gw-api-tools/internal/logger"
	"github.com/sbilibin2017/gw-api-tools/internal/models"
)

// DefaultWeatherAPIURL is the wttr.in endpoint.
const DefaultWeatherAPIURL = "https://wttr.in"

// ufaCoordinates replaces the city name, which wttr.in resolves to the wrong place.
const ufaCoordinates = "54.775,56.038"

// WeatherAPIFacade fetches current conditions and weather images from wttr.in.
type WeatherAPIFacade struct {
	client  *http.Client
	baseURL string
}

// NewWeatherAPIFacade creates a new facade.
func NewWeatherAPIFacade(client *http.Client, baseURL string) *WeatherAPIFacade {
	return &WeatherAPIFacade{client: client, baseURL: baseURL}
}

// EncodeLocation converts a city name into the wttr.in location form.
func EncodeLocation(city string) string {
	switch strings.ToLower(strings.TrimSpace(city)) {
	case "уфа", "ufa":
		return ufaCoordinates
	}
	return strings.ReplaceAll(url.PathEscape(city), "%20", "+")
}

// GetCurrentWeather fetches current conditions for city in the j1 JSON format.
func (f *WeatherAPIFacade) GetCurrentWeather(ctx context.Context, city string) (*models.CurrentWeather, error) {
	u := fmt.Sprintf("%s/%s?format=j1&lang=ru", f.baseURL, EncodeLocation(city))

	status, body, err := get(ctx, f.client, u)
	if err != nil {
		logger.Log.Errorw("failed to fetch weather", "city", city, "error", err)
		return nil, err
	}

	// wttr.in answers unknown locations with a plain-text 404.
	if err := classifier.CheckStatus(status); err != nil {
		logger.Log.Errorw("failed to fetch weather", "city", city, "status", status, "error", err)
		return nil, err
	}

	payload, err := classifier.Classify(status, body)
	if err != nil {
		logger.Log.Errorw("failed to fetch weather", "city", city, "status", status, "error", err)
		return nil, err
	}

	w, err := currentWeather(payload)
	if err != nil {
		logger.Log.Errorw("unexpected weather response", "city", city, "error", err)
		return nil, err
	}
	return w, nil
}

// GetWeatherImage fetches the PNG weather card for city.
func (f *WeatherAPIFacade) GetWeatherImage(ctx context.Context, city string) ([]byte, error) {
	u := fmt.Sprintf("%s/%s_pm_lang=ru.png", f.baseURL, EncodeLocation(city))

	status, body, err := get(ctx, f.client, u)
	if err != nil {
		logger.Log.Errorw("failed to fetch weather image", "city", city, "error", err)
		return nil, err
	}
	if err := classifier.CheckStatus(status); err != nil {
		logger.Log.Errorw("failed to fetch weather image", "city", city, "status", status, "error", err)
		return nil, err
	}
	return body, nil
}

func currentWeather(p classifier.Payload) (*models.CurrentWeather, error) {
	var (
		w   models.CurrentWeather
		err error
	)
	fields := []struct {
		dst  *string
		path []string
	}{
		{&w.TempC, []string{"current_condition", "0", "temp_C"}},
		{&w.FeelsLikeC, []string{"current_condition", "0", "FeelsLikeC"}},
		{&w.Pressure, []string{"current_condition", "0", "pressure"}},
		{&w.Humidity, []string{"current_condition", "0", "humidity"}},
		{&w.WindSpeedKmph, []string{"current_condition", "0", "windspeedKmph"}},
		{&w.Description, []string{"current_condition", "0", "lang_ru", "0", "value"}},
		{&w.Latitude, []string{"nearest_area", "0", "latitude"}},
		{&w.Longitude, []string{"nearest_area", "0", "longitude"}},
		{&w.Area, []string{"nearest_area", "0", "areaName", "0", "value"}},
	}
	for _, field := range fields {
		if *field.dst, err = p.String(field.path...); err != nil {
			return nil, err
		}
	}
	return &w, nil
}
