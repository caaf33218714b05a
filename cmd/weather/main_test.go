package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	assert.NoError(t, err)
	assert.Equal(t, options{configPath: "config.env", city: "Москва"}, opts)

	opts, err = parseFlags([]string{"-city", "Екатеринбург", "-noimage", "-filename", "ekb.png", "-c", "w.env"}, io.Discard)
	assert.NoError(t, err)
	assert.Equal(t, options{configPath: "w.env", city: "Екатеринбург", noImage: true, fileName: "ekb.png"}, opts)

	_, err = parseFlags([]string{"Москва"}, io.Discard)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-unknown"}, io.Discard)
	assert.Error(t, err)
}

func TestPrintBuildInfo_Output(t *testing.T) {
	buildVersion = "v1.2.3"

	var buf bytes.Buffer
	printBuildInfo(&buf)
	assert.Contains(t, buf.String(), "Version: v1.2.3")
}

func TestParseConfig_Defaults(t *testing.T) {
	for _, key := range []string{"WEATHER_API_URL", "IMAGES_DIR", "HTTP_TIMEOUT_SECOND", "APP_LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	apiURL, imagesDir, timeoutSecond, logLevel, err := parseConfig("nonexistent.env")
	assert.NoError(t, err)
	assert.Equal(t, "https://wttr.in", apiURL)
	assert.Equal(t, "images", imagesDir)
	assert.Equal(t, 10, timeoutSecond)
	assert.Equal(t, "fatal", logLevel)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	t.Setenv("WEATHER_API_URL", "http://localhost:8081")
	t.Setenv("IMAGES_DIR", "/tmp/pics")
	t.Setenv("HTTP_TIMEOUT_SECOND", "2")
	t.Setenv("APP_LOG_LEVEL", "info")

	apiURL, imagesDir, timeoutSecond, logLevel, err := parseConfig("nonexistent.env")
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8081", apiURL)
	assert.Equal(t, "/tmp/pics", imagesDir)
	assert.Equal(t, 2, timeoutSecond)
	assert.Equal(t, "info", logLevel)
}

func TestRun_SaveImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n")
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/Москва_pm_lang=ru.png", r.URL.Path)
		_, _ = w.Write(png)
	}))
	defer srv.Close()

	dir := t.TempDir()
	now := func() time.Time { return time.Date(2025, time.September, 27, 9, 5, 0, 0, time.UTC) }
	opts := options{city: "москва"}

	var stdout bytes.Buffer
	err := run(context.Background(), opts, srv.URL, dir, 5*time.Second, "fatal", &stdout, now)
	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "[t] Текущее время: 2025.09.27_0905\n")
	assert.Contains(t, stdout.String(), "[->] Запрос по адресу "+srv.URL+"/Москва_pm_lang=ru.png\n")
	assert.Contains(t, stdout.String(), "[+] Погода для города Москва сохранена в файл")

	got, err := os.ReadFile(filepath.Join(dir, "Москва_2025.09.27_0905.png"))
	assert.NoError(t, err)
	assert.Equal(t, png, got)

	// Second run within the same minute skips the request.
	stdout.Reset()
	err = run(context.Background(), opts, srv.URL, dir, 5*time.Second, "fatal", &stdout, now)
	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "[i] Файл Москва_2025.09.27_0905.png уже существует. Пропуск запроса.\n")
	assert.NotContains(t, stdout.String(), "[->]")
	assert.Equal(t, 1, requests)
}

func TestRun_Console(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "j1", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`{
			"current_condition": [{"temp_C": "20", "FeelsLikeC": "19", "pressure": "1010",
				"humidity": "55", "windspeedKmph": "9", "lang_ru": [{"value": "Солнечно"}]}],
			"nearest_area": [{"areaName": [{"value": "Kazan"}], "latitude": "55.79", "longitude": "49.12"}]
		}`))
	}))
	defer srv.Close()

	now := func() time.Time { return time.Now() }

	var stdout bytes.Buffer
	err := run(context.Background(), options{city: "Казань", noImage: true}, srv.URL, t.TempDir(), 5*time.Second, "fatal", &stdout, now)
	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "[°С] Погода в городе Kazan:")
	assert.Contains(t, stdout.String(), "Описание: Солнечно")
}

func TestRun_InvalidCity(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), options{city: "A1"}, "http://127.0.0.1:0", t.TempDir(), time.Second, "fatal", &stdout, time.Now)
	assert.Error(t, err)
	assert.Contains(t, stdout.String(), "[!] название города не должно содержать цифры: 'A1'")
}
