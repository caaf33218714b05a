package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrUnsupportedCurrency = errors.New("название валюты не существует")
	ErrCityTooShort        = errors.New("название города слишком короткое")
	ErrCityHasDigits       = errors.New("название города не должно содержать цифры")
	ErrInvalidAmount       = errors.New("сумма должна быть положительной")
	ErrInvalidDate         = errors.New("некорректная дата")
)

var currencyCode validator.Func = func(fl validator.FieldLevel) bool {
	return IsSupportedCurrency(fl.Field().String())
}

var noDigits validator.Func = func(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsDigit)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("currency", currencyCode)
	_ = v.RegisterValidation("nodigits", noDigits)
	return v
}

// RateRequest selects a currency pair.
type RateRequest struct {
	BaseCode   string `validate:"currency"`
	TargetCode string `validate:"currency"`
}

// NewRateRequest normalizes and validates both currency codes.
func NewRateRequest(base, target string) (RateRequest, error) {
	req := RateRequest{
		BaseCode:   NormalizeCurrency(base),
		TargetCode: NormalizeCurrency(target),
	}
	if err := validate.Struct(req); err != nil {
		return RateRequest{}, translate(err)
	}
	return req, nil
}

// ConvertRequest is a currency pair with the amount to convert.
type ConvertRequest struct {
	RateRequest
	Amount float64 `validate:"gt=0"`
}

// NewConvertRequest validates the pair and a positive amount.
func NewConvertRequest(base, target string, amount float64) (ConvertRequest, error) {
	pair, err := NewRateRequest(base, target)
	if err != nil {
		return ConvertRequest{}, err
	}
	req := ConvertRequest{RateRequest: pair, Amount: amount}
	if err := validate.Struct(req); err != nil {
		return ConvertRequest{}, translate(err)
	}
	return req, nil
}

// HistoryRequest is a currency pair, a calendar date and an amount.
type HistoryRequest struct {
	RateRequest
	Date   time.Time
	Amount float64 `validate:"gt=0"`
}

// NewHistoryRequest validates the pair, the date components and the amount.
// The date is not compared with the current time here.
func NewHistoryRequest(base, target, yyyy, mm, dd string, amount float64) (HistoryRequest, error) {
	pair, err := NewRateRequest(base, target)
	if err != nil {
		return HistoryRequest{}, err
	}
	date, err := ParseDate(yyyy, mm, dd)
	if err != nil {
		return HistoryRequest{}, err
	}
	req := HistoryRequest{RateRequest: pair, Date: date, Amount: amount}
	if err := validate.Struct(req); err != nil {
		return HistoryRequest{}, translate(err)
	}
	return req, nil
}

// ParseDate builds a UTC date from its components, rejecting values that
// time.Date would silently normalize (e.g. 2023-02-30).
func ParseDate(yyyy, mm, dd string) (time.Time, error) {
	y, errY := strconv.Atoi(strings.TrimSpace(yyyy))
	m, errM := strconv.Atoi(strings.TrimSpace(mm))
	d, errD := strconv.Atoi(strings.TrimSpace(dd))
	if err := errors.Join(errY, errM, errD); err != nil {
		return time.Time{}, fmt.Errorf("%w: %s.%s.%s", ErrInvalidDate, yyyy, mm, dd)
	}

	date := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if y < 1 || date.Year() != y || int(date.Month()) != m || date.Day() != d {
		return time.Time{}, fmt.Errorf("%w: %s.%s.%s", ErrInvalidDate, yyyy, mm, dd)
	}
	return date, nil
}

// WeatherRequest selects the city to report on.
type WeatherRequest struct {
	City string `validate:"min=2,nodigits"`
}

// NewWeatherRequest trims, validates and title-cases the city name.
func NewWeatherRequest(city string) (WeatherRequest, error) {
	req := WeatherRequest{City: strings.TrimSpace(city)}
	if err := validate.Struct(req); err != nil {
		return WeatherRequest{}, translate(err)
	}
	req.City = cases.Title(language.Und).String(req.City)
	return req, nil
}

// translate maps the first validation failure to a package sentinel error.
func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "currency":
		return fmt.Errorf("%w: '%v'", ErrUnsupportedCurrency, fe.Value())
	case "min":
		return fmt.Errorf("%w: '%v'", ErrCityTooShort, fe.Value())
	case "nodigits":
		return fmt.Errorf("%w: '%v'", ErrCityHasDigits, fe.Value())
	case "gt":
		return fmt.Errorf("%w: %v", ErrInvalidAmount, fe.Value())
	default:
		return err
	}
}
