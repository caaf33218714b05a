// Package classifier turns raw HTTP responses of the exchange rate and
// weather APIs into decoded payloads or typed errors.
package classifier

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-api-tools/internal/models"
)

const (
	resultField    = "result"
	resultError    = "error"
	errorTypeField = "error-type"
)

// Classify decodes body and decides the outcome of a request. Checks run in
// order and the first failure wins:
//
//  1. body is not a JSON object: *DecodeError, status code ignored;
//  2. "result" is "error": *APIError, or *UnknownAPIError for an unrecognised "error-type";
//  3. status code is 4xx or 5xx: *TransportError;
//
// otherwise the decoded payload is returned for field extraction.
func Classify(statusCode int, body []byte) (Payload, error) {
	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if payload == nil {
		return nil, &DecodeError{Err: errors.New("response body is not a JSON object")}
	}

	if result, _ := payload[resultField].(string); result == resultError {
		errorType, _ := payload[errorTypeField].(string)
		code, message, ok := models.LookupAPIErrorCode(errorType)
		if !ok {
			return nil, &UnknownAPIError{Type: errorType}
		}
		return nil, &APIError{Code: code, Message: message}
	}

	if err := CheckStatus(statusCode); err != nil {
		return nil, err
	}

	return payload, nil
}

// CheckStatus returns *TransportError for client and server error statuses.
func CheckStatus(statusCode int) error {
	if statusCode >= http.StatusBadRequest && statusCode < 600 {
		return &TransportError{StatusCode: statusCode}
	}
	return nil
}
