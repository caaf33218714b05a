package handlers

//go:generate mockgen -source=weather.go -destination=weather_mock.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sbilibin2017/gw-api-tools/internal/models"
	"github.com/sbilibin2017/gw-api-tools/internal/services"
)

// WeatherReporter defines the interface that the service must implement.
type WeatherReporter interface {
	Current(ctx context.Context, req models.WeatherRequest) (*models.CurrentWeather, error)
}

// ImageSaver defines the interface that the service must implement.
type ImageSaver interface {
	SaveImage(ctx context.Context, req models.WeatherRequest, fileName string, now time.Time) (string, error)
}

// NewCurrentWeatherHandler returns a handler printing current conditions.
func NewCurrentWeatherHandler(svc WeatherReporter, w io.Writer) func(ctx context.Context, req models.WeatherRequest) error {
	return func(ctx context.Context, req models.WeatherRequest) error {
		cw, err := svc.Current(ctx, req)
		if err != nil {
			ReportError(w, err)
			return err
		}

		fmt.Fprintf(w, "[°С] Погода в городе %s:\n", cw.Area)
		fmt.Fprintf(w, "    Температура: %s°C\n", cw.TempC)
		fmt.Fprintf(w, "    Ощущается как: %s°C\n", cw.FeelsLikeC)
		fmt.Fprintf(w, "    Влажность: %s%%\n", cw.Humidity)
		fmt.Fprintf(w, "    Скорость ветра: %s км/ч\n", cw.WindSpeedKmph)
		fmt.Fprintf(w, "    Давление: %s гПа\n", cw.Pressure)
		fmt.Fprintf(w, "    Описание: %s\n", cw.Description)
		fmt.Fprintf(w, "    Координаты: %s, %s\n", cw.Latitude, cw.Longitude)
		return nil
	}
}

// NewSaveImageHandler returns a handler saving the weather image of a city.
// An existing image is reported and is not an error.
func NewSaveImageHandler(svc ImageSaver, w io.Writer, now func() time.Time) func(ctx context.Context, req models.WeatherRequest, fileName string) error {
	return func(ctx context.Context, req models.WeatherRequest, fileName string) error {
		path, err := svc.SaveImage(ctx, req, fileName, now())
		if errors.Is(err, services.ErrImageExists) {
			fmt.Fprintf(w, "[i] Файл %s уже существует. Пропуск запроса.\n", path)
			return nil
		}
		if err != nil {
			ReportError(w, err)
			return err
		}

		fmt.Fprintf(w, "[+] Погода для города %s сохранена в файл %s\n", req.City, path)
		return nil
	}
}
