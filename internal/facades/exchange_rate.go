package facades

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-api-tools/internal/classifier"
	"github.com/sbilibin2017/gw-api-tools/internal/logger"
	"github.com/sbilibin2017/gw-api-tools/internal/models"
)

// DefaultExchangeRateAPIURL is the v6 endpoint of exchangerate-api.com.
const DefaultExchangeRateAPIURL = "https://v6.exchangerate-api.com/v6"

// ExchangeRateAPIFacade fetches exchange rates from exchangerate-api.com.
type ExchangeRateAPIFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewExchangeRateAPIFacade creates a new facade. The API key is embedded in
// the request path.
func NewExchangeRateAPIFacade(client *http.Client, baseURL, apiKey string) *ExchangeRateAPIFacade {
	return &ExchangeRateAPIFacade{client: client, baseURL: baseURL, apiKey: apiKey}
}

// GetExchangeRateForCurrency fetches the current rate between two currencies.
func (f *ExchangeRateAPIFacade) GetExchangeRateForCurrency(
	ctx context.Context,
	baseCode, targetCode string,
) (*models.ExchangeRateResult, error) {
	url := fmt.Sprintf("%s/%s/pair/%s/%s", f.baseURL, f.apiKey, baseCode, targetCode)

	payload, err := f.fetch(ctx, url)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate",
			"from", baseCode, "to", targetCode, "error", err)
		return nil, err
	}

	rate, err := payload.Float("conversion_rate")
	if err != nil {
		logger.Log.Errorw("unexpected exchange rate response",
			"from", baseCode, "to", targetCode, "error", err)
		return nil, err
	}

	return &models.ExchangeRateResult{
		BaseCode:   baseCode,
		TargetCode: targetCode,
		Rate:       rate,
	}, nil
}

// GetHistoryExchangeRate fetches the value of amount base currency units in
// the target currency on the given date.
func (f *ExchangeRateAPIFacade) GetHistoryExchangeRate(
	ctx context.Context,
	req models.HistoryRequest,
) (*models.HistoryRateResult, error) {
	url := fmt.Sprintf("%s/%s/history/%s/%d/%d/%d/%s",
		f.baseURL, f.apiKey, req.BaseCode,
		req.Date.Year(), int(req.Date.Month()), req.Date.Day(),
		strconv.FormatFloat(req.Amount, 'f', -1, 64),
	)

	payload, err := f.fetch(ctx, url)
	if err != nil {
		logger.Log.Errorw("failed to fetch historical exchange rate",
			"from", req.BaseCode, "to", req.TargetCode, "date", req.Date, "error", err)
		return nil, err
	}

	value, err := payload.Float("conversion_amounts", req.TargetCode)
	if err != nil {
		logger.Log.Errorw("unexpected historical exchange rate response",
			"from", req.BaseCode, "to", req.TargetCode, "error", err)
		return nil, err
	}

	return &models.HistoryRateResult{
		BaseCode:   req.BaseCode,
		TargetCode: req.TargetCode,
		Date:       req.Date,
		Amount:     req.Amount,
		Value:      value,
	}, nil
}

func (f *ExchangeRateAPIFacade) fetch(ctx context.Context, url string) (classifier.Payload, error) {
	status, body, err := get(ctx, f.client, url)
	if err != nil {
		return nil, err
	}
	return classifier.Classify(status, body)
}
