package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateResult is the current rate of one base currency unit in the target currency.
type ExchangeRateResult struct {
	BaseCode   string  `json:"base_code"`
	TargetCode string  `json:"target_code"`
	Rate       float64 `json:"conversion_rate"`
}

// HistoryRateResult is the value of Amount base currency units in the target
// currency on Date.
type HistoryRateResult struct {
	BaseCode   string    `json:"base_code"`
	TargetCode string    `json:"target_code"`
	Date       time.Time `json:"date"`
	Amount     float64   `json:"amount"`
	Value      float64   `json:"value"`
}

// ConversionResult is an amount converted with the current rate.
type ConversionResult struct {
	BaseCode   string          `json:"base_code"`
	TargetCode string          `json:"target_code"`
	Amount     decimal.Decimal `json:"amount"`
	Rate       decimal.Decimal `json:"rate"`
	Converted  decimal.Decimal `json:"converted"`
}
