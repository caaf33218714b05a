package models

// APIErrorCode is the "error-type" value returned by the exchange rate API
// alongside "result": "error".
type APIErrorCode string

const (
	APIErrorNoDataAvailable     APIErrorCode = "no-data-available"
	APIErrorUnsupportedCode     APIErrorCode = "unsupported-code"
	APIErrorMalformedRequest    APIErrorCode = "malformed-request"
	APIErrorInvalidKey          APIErrorCode = "invalid-key"
	APIErrorInactiveAccount     APIErrorCode = "inactive-account"
	APIErrorQuotaReached        APIErrorCode = "quota-reached"
	APIErrorPlanUpgradeRequired APIErrorCode = "plan-upgrade-required"
)

// See https://www.exchangerate-api.com/docs/pair-conversion-requests
// and https://www.exchangerate-api.com/docs/historical-data-requests
var apiErrorMessages = map[APIErrorCode]string{
	APIErrorNoDataAvailable:     "Нет курсов обмена валют на указанную дату",
	APIErrorUnsupportedCode:     "Неподдерживаемый код валюты",
	APIErrorMalformedRequest:    "Запрос не соответствует структуре",
	APIErrorInvalidKey:          "Ключ API недействителен",
	APIErrorInactiveAccount:     "Адрес электронной почты не был подтвержден",
	APIErrorQuotaReached:        "Достигнут лимит запросов",
	APIErrorPlanUpgradeRequired: "Уровень подписки не поддерживает этот тип запроса",
}

// LookupAPIErrorCode resolves a raw error-type value.
// ok is false when the value is not one of the known codes.
func LookupAPIErrorCode(raw string) (code APIErrorCode, message string, ok bool) {
	code = APIErrorCode(raw)
	message, ok = apiErrorMessages[code]
	return code, message, ok
}

// Message returns the human-readable description of the code, or an empty
// string for unknown codes.
func (c APIErrorCode) Message() string {
	return apiErrorMessages[c]
}
