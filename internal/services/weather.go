package services

//go:generate mockgen -source=weather.go -destination=weather_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-api-tools/internal/logger"
	"github.com/sbilibin2017/gw-api-tools/internal/models"
)

// ImageTimeLayout is the timestamp part of default image file names.
const ImageTimeLayout = "2006.01.02_1504"

const imageExt = ".png"

// WeatherReader fetches weather data from an external service.
type WeatherReader interface {
	GetCurrentWeather(ctx context.Context, city string) (*models.CurrentWeather, error)
	GetWeatherImage(ctx context.Context, city string) ([]byte, error)
}

// ImageWriter stores weather images.
type ImageWriter interface {
	Exists(name string) (bool, error)
	Save(name string, data []byte) (string, error)
}

var (
	ErrImageExists = errors.New("image already exists")
)

// WeatherService reports current weather and saves weather images.
type WeatherService struct {
	reader WeatherReader
	images ImageWriter
}

// NewWeatherService creates a new WeatherService instance.
func NewWeatherService(reader WeatherReader, images ImageWriter) *WeatherService {
	return &WeatherService{
		reader: reader,
		images: images,
	}
}

// Current returns current conditions for the requested city.
func (svc *WeatherService) Current(ctx context.Context, req models.WeatherRequest) (*models.CurrentWeather, error) {
	w, err := svc.reader.GetCurrentWeather(ctx, req.City)
	if err != nil {
		logger.Log.Errorw("failed to get current weather", "city", req.City, "err", err)
		return nil, err
	}
	return w, nil
}

// SaveImage downloads the weather image for the city and stores it under
// fileName, or under a name derived from the city and now when fileName is
// empty. The download is skipped with ErrImageExists when the file is present.
func (svc *WeatherService) SaveImage(
	ctx context.Context,
	req models.WeatherRequest,
	fileName string,
	now time.Time,
) (string, error) {
	name := ImageFileName(req.City, fileName, now)

	exists, err := svc.images.Exists(name)
	if err != nil {
		logger.Log.Errorw("failed to check image", "name", name, "err", err)
		return "", err
	}
	if exists {
		logger.Log.Infow("image already exists, skipping request", "name", name)
		return name, fmt.Errorf("%w: %s", ErrImageExists, name)
	}

	data, err := svc.reader.GetWeatherImage(ctx, req.City)
	if err != nil {
		logger.Log.Errorw("failed to get weather image", "city", req.City, "err", err)
		return "", err
	}

	path, err := svc.images.Save(name, data)
	if err != nil {
		logger.Log.Errorw("failed to save weather image", "name", name, "err", err)
		return "", err
	}
	return path, nil
}

// ImageFileName returns fileName with a .png extension, or the default
// "<city>_<YYYY.MM.DD_HHMM>.png" when fileName is empty.
func ImageFileName(city, fileName string, now time.Time) string {
	if fileName == "" {
		fileName = city + "_" + now.Format(ImageTimeLayout)
	}
	if !strings.HasSuffix(strings.ToLower(fileName), imageExt) {
		fileName += imageExt
	}
	return fileName
}
