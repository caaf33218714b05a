package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/gw-api-tools/internal/facades"
	"github.com/sbilibin2017/gw-api-tools/internal/handlers"
	"github.com/sbilibin2017/gw-api-tools/internal/logger"
	"github.com/sbilibin2017/gw-api-tools/internal/middlewares"
	"github.com/sbilibin2017/gw-api-tools/internal/models"
	"github.com/sbilibin2017/gw-api-tools/internal/repositories"
	"github.com/sbilibin2017/gw-api-tools/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the tool
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const usageText = `Получение и сохранение погоды из wttr.in (по умолчанию в PNG)
Страница проекта: https://github.com/chubin/wttr.in

Использование:
  weather [-c config.env] [-city Москва] [-noimage] [-filename имя.png]

Пример:
  weather -city "Екатеринбург" -filename "Екат_2025.09.27.png"

Флаги:
`

// options holds the parsed command line.
type options struct {
	configPath  string
	showVersion bool
	city        string
	noImage     bool
	fileName    string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "[!]", err)
		os.Exit(2)
	}
	if opts.showVersion {
		printBuildInfo(os.Stdout)
		return
	}

	apiURL, imagesDir, timeoutSecond, logLevel, err := parseConfig(opts.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "[!] failed to parse config:", err)
		os.Exit(2)
	}

	if err := run(context.Background(), opts,
		apiURL, imagesDir, time.Duration(timeoutSecond)*time.Second, logLevel,
		os.Stdout, time.Now,
	); err != nil {
		os.Exit(1)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo(w io.Writer) {
	fmt.Fprintf(w, "Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags.
func parseFlags(args []string, output io.Writer) (opts options, err error) {
	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.configPath, "c", "config.env", "Path to configuration file")
	fs.BoolVar(&opts.showVersion, "version", false, "Print build info and exit")
	fs.StringVar(&opts.city, "city", "Москва", "Целевой город для получения погоды")
	fs.BoolVar(&opts.noImage, "noimage", false, "Вывести погоду в консоль вместо сохранения PNG")
	fs.StringVar(&opts.fileName, "filename", "", "Имя файла PNG (по умолчанию <город>_<время>.png)")

	if err = fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("лишние аргументы %v", fs.Args())
	}
	return opts, nil
}

// parseConfig loads environment variables from a file and returns
// the weather API, storage, HTTP and logging configuration.
func parseConfig(path string) (
	apiURL, imagesDir string,
	timeoutSecond int,
	logLevel string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	logLevel = getEnv("APP_LOG_LEVEL", "fatal")

	// Weather API config
	apiURL = getEnv("WEATHER_API_URL", facades.DefaultWeatherAPIURL)
	if timeoutSecond, err = strconv.Atoi(getEnv("HTTP_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// Storage config
	imagesDir = getEnv("IMAGES_DIR", "images")

	return
}

// run initializes the logger, HTTP client, storage and services, then either
// prints current weather or saves the weather image.
func run(ctx context.Context,
	opts options,
	apiURL, imagesDir string,
	timeout time.Duration,
	logLevel string,
	stdout io.Writer,
	now func() time.Time,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Fprintln(stdout, "[!] failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("starting", "city", opts.city, "noimage", opts.noImage, "version", buildVersion)

	fmt.Fprintf(stdout, "[t] Текущее время: %s\n", now().Format(services.ImageTimeLayout))

	req, err := models.NewWeatherRequest(opts.city)
	if err != nil {
		handlers.ReportError(stdout, err)
		return err
	}

	// Initialize HTTP client
	client := &http.Client{
		Timeout:   timeout,
		Transport: middlewares.EchoTransport(stdout,
			middlewares.LoggingTransport(logger.Log, http.DefaultTransport),
		),
	}

	// Initialize facades, repositories and services
	facade := facades.NewWeatherAPIFacade(client, apiURL)
	images := repositories.NewImageFileRepository(imagesDir)
	weatherService := services.NewWeatherService(facade, images)

	if opts.noImage {
		return handlers.NewCurrentWeatherHandler(weatherService, stdout)(ctx, req)
	}
	return handlers.NewSaveImageHandler(weatherService, stdout, now)(ctx, req, opts.fileName)
}
