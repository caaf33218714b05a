package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sbilibin2017/gw-api-tools/internal/facades"
	"github.com/sbilibin2017/gw-api-tools/internal/handlers"
	"github.com/sbilibin2017/gw-api-tools/internal/logger"
	"github.com/sbilibin2017/gw-api-tools/internal/middlewares"
	"github.com/sbilibin2017/gw-api-tools/internal/models"
	"github.com/sbilibin2017/gw-api-tools/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the tool
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var (
	errMissingCommand = errors.New("не указана команда")
	errMissingAPIKey  = errors.New("API_KEY не задан")
)

// commandError marks a failure of an executed command, as opposed to a usage
// or configuration error detected before any request is made.
type commandError struct {
	err error
}

func (e *commandError) Error() string { return e.err.Error() }
func (e *commandError) Unwrap() error { return e.err }

// options holds the parsed command line.
type options struct {
	configPath string
	base       string
	target     string
	yyyy       string
	mm         string
	dd         string
	amount     float64
}

// action executes one command against the exchange service.
type action func(ctx context.Context, svc *services.ExchangeService) error

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr, time.Now))
}

// execute runs the command line and maps the outcome to an exit code.
// Usage and configuration errors are printed to stderr; command failures are
// already reported to stdout by the handlers.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, now func() time.Time) int {
	rootCmd := newRootCmd(stdout, now)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		return exitFailure
	}
	fmt.Fprintln(stderr, "[!]", err)
	return exitUsage
}

// newRootCmd builds the currency command tree.
func newRootCmd(stdout io.Writer, now func() time.Time) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "currency",
		Short: "Получение курса валют из сервиса exchangerate-api.com",
		Long: `Получение курса валют из сервиса exchangerate-api.com
Страница документации: https://www.exchangerate-api.com/docs/overview`,
		Example: `  currency current
  currency --base CAD --target RUB convert 123.45
  currency --base CAD --target EUR history -y 2023 -m 10 -d 05 -a 100`,
		Version:       buildVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return errMissingCommand
		},
	}
	rootCmd.SetVersionTemplate(buildInfo())

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.env", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&opts.base, "base", "b", "USD", "Базовая валюта")
	rootCmd.PersistentFlags().StringVarP(&opts.target, "target", "t", "RUB", "Целевая валюта")
	rootCmd.SetGlobalNormalizationFunc(flagAliases)

	rootCmd.AddCommand(
		newCurrentCmd(&opts, stdout, now),
		newHistoryCmd(&opts, stdout, now),
		newConvertCmd(&opts, stdout, now),
	)
	return rootCmd
}

// flagAliases accepts the short currency flag names --bc and --tc.
func flagAliases(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "bc":
		name = "base"
	case "tc":
		name = "target"
	}
	return pflag.NormalizedName(name)
}

func newCurrentCmd(opts *options, stdout io.Writer, now func() time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Текущий курс валюты",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := models.NewRateRequest(opts.base, opts.target)
			if err != nil {
				return err
			}
			return run(cmd.Context(), opts.configPath, stdout, now, func(ctx context.Context, svc *services.ExchangeService) error {
				return handlers.NewCurrentRateHandler(svc, stdout)(ctx, req)
			})
		},
	}
}

func newHistoryCmd(opts *options, stdout io.Writer, now func() time.Time) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Исторический курс валюты",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := models.NewHistoryRequest(opts.base, opts.target, opts.yyyy, opts.mm, opts.dd, opts.amount)
			if err != nil {
				return err
			}
			return run(cmd.Context(), opts.configPath, stdout, now, func(ctx context.Context, svc *services.ExchangeService) error {
				return handlers.NewHistoryRateHandler(svc, stdout)(ctx, req)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.yyyy, "yyyy", "y", "", "Год")
	cmd.Flags().StringVarP(&opts.mm, "mm", "m", "", "Месяц")
	cmd.Flags().StringVarP(&opts.dd, "dd", "d", "", "День")
	cmd.Flags().Float64VarP(&opts.amount, "amount", "a", 1.0, "Сумма для конвертации")
	_ = cmd.MarkFlagRequired("yyyy")
	_ = cmd.MarkFlagRequired("mm")
	_ = cmd.MarkFlagRequired("dd")
	return cmd
}

func newConvertCmd(opts *options, stdout io.Writer, now func() time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <сумма>",
		Short: "Конвертация валюты по текущему курсу",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("некорректная сумма %q", args[0])
			}
			req, err := models.NewConvertRequest(opts.base, opts.target, amount)
			if err != nil {
				return err
			}
			return run(cmd.Context(), opts.configPath, stdout, now, func(ctx context.Context, svc *services.ExchangeService) error {
				return handlers.NewConvertHandler(svc, stdout)(ctx, req)
			})
		},
	}
}

// buildInfo returns the build version, commit hash, and build date.
func buildInfo() string {
	return fmt.Sprintf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseConfig loads environment variables from a file and returns
// the exchange rate API, HTTP and logging configuration.
func parseConfig(path string) (
	apiKey, apiURL string,
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

	// Exchange rate API config
	apiKey = getEnv("API_KEY", "")
	apiURL = getEnv("EXCHANGE_API_URL", facades.DefaultExchangeRateAPIURL)
	if timeoutSecond, err = strconv.Atoi(getEnv("HTTP_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	if apiKey == "" {
		err = errMissingAPIKey
	}
	return
}

// run loads the configuration, initializes the logger, HTTP client and
// services, then executes act. Failures of act are returned as commandError.
func run(ctx context.Context,
	configPath string,
	stdout io.Writer,
	now func() time.Time,
	act action,
) error {
	apiKey, apiURL, timeoutSecond, logLevel, err := parseConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Fprintln(stdout, "[!] failed to initialize logger:", err)
		return &commandError{err: err}
	}
	defer logger.Sync()
	logger.Log.Infow("starting", "config", configPath, "version", buildVersion)

	fmt.Fprintf(stdout, "[t] Текущее время: %s\n", now().Format("2006.01.02_15:04"))

	// Initialize HTTP client
	client := &http.Client{
		Timeout: time.Duration(timeoutSecond) * time.Second,
		Transport: middlewares.EchoTransport(stdout,
			middlewares.LoggingTransport(logger.Log, http.DefaultTransport, apiKey),
			apiKey,
		),
	}

	// Initialize facades and services
	facade := facades.NewExchangeRateAPIFacade(client, apiURL, apiKey)
	exchangeService := services.NewExchangeService(facade, facade)

	if err := act(ctx, exchangeService); err != nil {
		return &commandError{err: err}
	}
	return nil
}
