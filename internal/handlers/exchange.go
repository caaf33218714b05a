package handlers

//go:generate mockgen -source=exchange.go -destination=exchange_mock.go -package=handlers

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/sbilibin2017/gw-api-tools/internal/models"
)

// CurrentRater defines the interface that the service must implement.
type CurrentRater interface {
	Current(ctx context.Context, req models.RateRequest) (*models.ExchangeRateResult, error)
}

// HistoryRater defines the interface that the service must implement.
type HistoryRater interface {
	History(ctx context.Context, req models.HistoryRequest) (*models.HistoryRateResult, error)
}

// Converter defines the interface that the service must implement.
type Converter interface {
	Convert(ctx context.Context, req models.ConvertRequest) (*models.ConversionResult, error)
}

// NewCurrentRateHandler returns a handler printing the current rate for a pair.
func NewCurrentRateHandler(svc CurrentRater, w io.Writer) func(ctx context.Context, req models.RateRequest) error {
	return func(ctx context.Context, req models.RateRequest) error {
		res, err := svc.Current(ctx, req)
		if err != nil {
			ReportError(w, err)
			return err
		}

		fmt.Fprintf(w, "[ok] Курс валюты: 1 %s стоит %s %s\n",
			res.BaseCode, formatFloat(res.Rate), res.TargetCode)
		return nil
	}
}

// NewHistoryRateHandler returns a handler printing the value of an amount on a past date.
func NewHistoryRateHandler(svc HistoryRater, w io.Writer) func(ctx context.Context, req models.HistoryRequest) error {
	return func(ctx context.Context, req models.HistoryRequest) error {
		res, err := svc.History(ctx, req)
		if err != nil {
			ReportError(w, err)
			return err
		}

		fmt.Fprintf(w, "[ok] Курс валюты на %s: %s %s стоит %s %s\n",
			res.Date.Format("2006.01.02"),
			formatFloat(res.Amount), res.BaseCode,
			formatFloat(res.Value), res.TargetCode)
		return nil
	}
}

// NewConvertHandler returns a handler printing an amount converted at the current rate.
func NewConvertHandler(svc Converter, w io.Writer) func(ctx context.Context, req models.ConvertRequest) error {
	return func(ctx context.Context, req models.ConvertRequest) error {
		res, err := svc.Convert(ctx, req)
		if err != nil {
			ReportError(w, err)
			return err
		}

		fmt.Fprintf(w, "[ok] Курс валюты: 1 %s стоит %s %s\n",
			res.BaseCode, res.Rate.String(), res.TargetCode)
		fmt.Fprintf(w, "[ok] %s %s стоит %s %s\n",
			res.Amount.String(), res.BaseCode, res.Converted.StringFixed(2), res.TargetCode)
		return nil
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
