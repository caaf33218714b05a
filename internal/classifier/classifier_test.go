package classifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sbilibin2017/gw-api-tools/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify_KnownAPIErrors(t *testing.T) {
	codes := []models.APIErrorCode{
		models.APIErrorNoDataAvailable,
		models.APIErrorUnsupportedCode,
		models.APIErrorMalformedRequest,
		models.APIErrorInvalidKey,
		models.APIErrorInactiveAccount,
		models.APIErrorQuotaReached,
		models.APIErrorPlanUpgradeRequired,
	}

	for _, code := range codes {
		for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusForbidden, http.StatusInternalServerError} {
			t.Run(fmt.Sprintf("%s_%d", code, status), func(t *testing.T) {
				body := fmt.Sprintf(`{"result":"error","error-type":%q}`, code)

				payload, err := Classify(status, []byte(body))
				assert.Nil(t, payload)

				var apiErr *APIError
				if assert.ErrorAs(t, err, &apiErr) {
					assert.Equal(t, code, apiErr.Code)
					assert.Equal(t, code.Message(), apiErr.Message)
				}
			})
		}
	}
}

func TestClassify_InvalidKeyMessage(t *testing.T) {
	_, err := Classify(http.StatusForbidden, []byte(`{"result":"error","error-type":"invalid-key"}`))

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Ключ API недействителен", apiErr.Message)
}

func TestClassify_UnknownAPIError(t *testing.T) {
	tests := []struct {
		name string
		body string
		typ  string
	}{
		{"unknown type", `{"result":"error","error-type":"solar-flare"}`, "solar-flare"},
		{"missing type", `{"result":"error"}`, ""},
		{"non string type", `{"result":"error","error-type":42}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(http.StatusOK, []byte(tt.body))

			var unknown *UnknownAPIError
			if assert.ErrorAs(t, err, &unknown) {
				assert.Equal(t, tt.typ, unknown.Type)
			}
		})
	}
}

func TestClassify_DecodeErrorIgnoresStatus(t *testing.T) {
	bodies := []string{"", "<html>oops</html>", "[1,2,3]", `"success"`, "null", `{"result":`}

	for _, body := range bodies {
		for _, status := range []int{http.StatusOK, http.StatusNotFound, http.StatusBadGateway} {
			t.Run(fmt.Sprintf("%q_%d", body, status), func(t *testing.T) {
				payload, err := Classify(status, []byte(body))
				assert.Nil(t, payload)

				var decodeErr *DecodeError
				assert.ErrorAs(t, err, &decodeErr)
			})
		}
	}
}

func TestClassify_TransportError(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusTooManyRequests, http.StatusInternalServerError, 599} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			_, err := Classify(status, []byte(`{"result":"success","conversion_rate":1.5}`))

			var transportErr *TransportError
			if assert.ErrorAs(t, err, &transportErr) {
				assert.Equal(t, status, transportErr.StatusCode)
			}
		})
	}
}

func TestClassify_Success(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNoContent, http.StatusFound} {
		payload, err := Classify(status, []byte(`{"result":"success","conversion_rate":92.5}`))
		assert.NoError(t, err)

		rate, err := payload.Float("conversion_rate")
		assert.NoError(t, err)
		assert.Equal(t, 92.5, rate)
	}
}

func TestCheckStatus(t *testing.T) {
	assert.NoError(t, CheckStatus(http.StatusOK))
	assert.NoError(t, CheckStatus(http.StatusMovedPermanently))
	assert.NoError(t, CheckStatus(600))

	var transportErr *TransportError
	assert.ErrorAs(t, CheckStatus(http.StatusServiceUnavailable), &transportErr)
	assert.Equal(t, "http status 503 Service Unavailable", transportErr.Error())
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestNetworkError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		timeout bool
	}{
		{"deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), true},
		{"net timeout", timeoutErr{}, true},
		{"refused", errors.New("dial tcp 127.0.0.1:1: connect: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			netErr := NewNetworkError(tt.err)
			assert.Equal(t, tt.timeout, netErr.Timeout())
			assert.ErrorIs(t, netErr, tt.err)
		})
	}
}
