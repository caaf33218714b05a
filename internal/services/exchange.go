package services

//go:generate mockgen -source=exchange.go -destination=exchange_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-api-tools/internal/logger"
	"github.com/sbilibin2017/gw-api-tools/internal/models"
	"github.com/shopspring/decimal"
)

// ExchangeRateForCurrencyReader fetches current exchange rates from an external service
type ExchangeRateForCurrencyReader interface {
	GetExchangeRateForCurrency(ctx context.Context, baseCode, targetCode string) (*models.ExchangeRateResult, error)
}

// HistoryExchangeRateReader fetches historical exchange rates from an external service
type HistoryExchangeRateReader interface {
	GetHistoryExchangeRate(ctx context.Context, req models.HistoryRequest) (*models.HistoryRateResult, error)
}

var (
	ErrFutureDate = errors.New("дата не может быть в будущем")
)

type ExchangeService struct {
	reader        ExchangeRateForCurrencyReader
	historyReader HistoryExchangeRateReader
	now           func() time.Time
}

// NewExchangeService creates a new service instance
func NewExchangeService(
	reader ExchangeRateForCurrencyReader,
	historyReader HistoryExchangeRateReader,
) *ExchangeService {
	return &ExchangeService{
		reader:        reader,
		historyReader: historyReader,
		now:           time.Now,
	}
}

// Current returns the current rate for the pair
func (svc *ExchangeService) Current(ctx context.Context, req models.RateRequest) (*models.ExchangeRateResult, error) {
	rate, err := svc.reader.GetExchangeRateForCurrency(ctx, req.BaseCode, req.TargetCode)
	if err != nil {
		logger.Log.Error(err)
		return nil, err
	}
	return rate, nil
}

// History returns the converted amount on a past date
func (svc *ExchangeService) History(ctx context.Context, req models.HistoryRequest) (*models.HistoryRateResult, error) {
	now := svc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.Date.After(today) {
		logger.Log.Errorw("history date is in the future", "date", req.Date, "today", today)
		return nil, ErrFutureDate
	}

	rate, err := svc.historyReader.GetHistoryExchangeRate(ctx, req)
	if err != nil {
		logger.Log.Error(err)
		return nil, err
	}
	return rate, nil
}

// Convert converts the amount with the current rate
func (svc *ExchangeService) Convert(ctx context.Context, req models.ConvertRequest) (*models.ConversionResult, error) {
	rate, err := svc.reader.GetExchangeRateForCurrency(ctx, req.BaseCode, req.TargetCode)
	if err != nil {
		logger.Log.Error(err)
		return nil, err
	}

	amount := decimal.NewFromFloat(req.Amount)
	r := decimal.NewFromFloat(rate.Rate)

	return &models.ConversionResult{
		BaseCode:   req.BaseCode,
		TargetCode: req.TargetCode,
		Amount:     amount,
		Rate:       r,
		Converted:  amount.Mul(r),
	}, nil
}
