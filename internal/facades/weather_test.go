package facades

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-api-tools/internal/classifier"
	"github.com/sbilibin2017/gw-api-tools/internal/models"
	"github.com/stretchr/testify/assert"
)

const j1Body = `{
	"current_condition": [{
		"FeelsLikeC": "-3",
		"humidity": "81",
		"pressure": "1012",
		"temp_C": "1",
		"windspeedKmph": "14",
		"lang_ru": [{"value": "Небольшой снег"}]
	}],
	"nearest_area": [{
		"areaName": [{"value": "Moscow"}],
		"latitude": "55.752",
		"longitude": "37.616"
	}]
}`

func TestEncodeLocation(t *testing.T) {
	assert.Equal(t, "New+York", EncodeLocation("New York"))
	assert.Equal(t, "54.775,56.038", EncodeLocation("Уфа"))
	assert.Equal(t, "54.775,56.038", EncodeLocation(" UFA "))
	assert.Equal(t, "%D0%9C%D0%BE%D1%81%D0%BA%D0%B2%D0%B0", EncodeLocation("Москва"))
}

func TestGetCurrentWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Москва", r.URL.Path)
		assert.Equal(t, "j1", r.URL.Query().Get("format"))
		assert.Equal(t, "ru", r.URL.Query().Get("lang"))
		_, _ = w.Write([]byte(j1Body))
	}))
	defer srv.Close()

	got, err := NewWeatherAPIFacade(srv.Client(), srv.URL).GetCurrentWeather(context.Background(), "Москва")
	assert.NoError(t, err)
	assert.Equal(t, &models.CurrentWeather{
		Area:          "Moscow",
		Latitude:      "55.752",
		Longitude:     "37.616",
		Description:   "Небольшой снег",
		TempC:         "1",
		FeelsLikeC:    "-3",
		Pressure:      "1012",
		Humidity:      "81",
		WindSpeedKmph: "14",
	}, got)
}

func TestGetCurrentWeather_MissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current_condition":[],"nearest_area":[]}`))
	}))
	defer srv.Close()

	_, err := NewWeatherAPIFacade(srv.Client(), srv.URL).GetCurrentWeather(context.Background(), "Moscow")

	var missing *classifier.MissingFieldError
	if assert.ErrorAs(t, err, &missing) {
		assert.Equal(t, "current_condition.0", missing.Field)
	}
}

func TestGetCurrentWeather_UnknownLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Unknown location; please try ~55.7,37.6"))
	}))
	defer srv.Close()

	got, err := NewWeatherAPIFacade(srv.Client(), srv.URL).GetCurrentWeather(context.Background(), "Nowhere")
	assert.Nil(t, got)

	var transportErr *classifier.TransportError
	if assert.ErrorAs(t, err, &transportErr) {
		assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
	}

	var decodeErr *classifier.DecodeError
	assert.False(t, errors.As(err, &decodeErr))
}

func TestGetWeatherImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/54.775,56.038_pm_lang=ru.png", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))
	defer srv.Close()

	got, err := NewWeatherAPIFacade(srv.Client(), srv.URL).GetWeatherImage(context.Background(), "Уфа")
	assert.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestGetWeatherImage_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	got, err := NewWeatherAPIFacade(srv.Client(), srv.URL).GetWeatherImage(context.Background(), "Moscow")
	assert.Nil(t, got)

	var transportErr *classifier.TransportError
	if assert.ErrorAs(t, err, &transportErr) {
		assert.Equal(t, http.StatusServiceUnavailable, transportErr.StatusCode)
	}
}
