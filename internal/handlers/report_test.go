package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sbilibin2017/gw-api-tools/internal/classifier"
	"github.com/sbilibin2017/gw-api-tools/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestReportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "decode error",
			err:      &classifier.DecodeError{Err: errors.New("unexpected end of JSON input")},
			expected: "[!] Ошибка декодирования JSON: unexpected end of JSON input\n",
		},
		{
			name:     "api error",
			err:      &classifier.APIError{Code: models.APIErrorInvalidKey, Message: models.APIErrorInvalidKey.Message()},
			expected: "[!] Ошибка API: Ключ API недействителен\n",
		},
		{
			name:     "unknown api error",
			err:      &classifier.UnknownAPIError{Type: "solar-flare"},
			expected: "[!] Неизвестная ошибка API: solar-flare\n",
		},
		{
			name:     "unknown api error without type",
			err:      &classifier.UnknownAPIError{},
			expected: "[!] Неизвестная ошибка API\n",
		},
		{
			name:     "transport error",
			err:      &classifier.TransportError{StatusCode: 404},
			expected: "[!] HTTP ошибка: http status 404 Not Found\n",
		},
		{
			name:     "missing field",
			err:      &classifier.MissingFieldError{Field: "conversion_rate"},
			expected: "[!] Ошибка при обработке данных: отсутствует ключ 'conversion_rate'\n",
		},
		{
			name:     "timeout",
			err:      classifier.NewNetworkError(context.DeadlineExceeded),
			expected: "[!] Таймаут при запросе к серверу\n",
		},
		{
			name:     "connection refused",
			err:      classifier.NewNetworkError(errors.New("connect: connection refused")),
			expected: "[!] Ошибка подключения: сервер недоступен\n",
		},
		{
			name:     "wrapped",
			err:      fmt.Errorf("fetch: %w", &classifier.TransportError{StatusCode: 500}),
			expected: "[!] HTTP ошибка: http status 500 Internal Server Error\n",
		},
		{
			name:     "other",
			err:      models.ErrInvalidDate,
			expected: "[!] некорректная дата\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ReportError(&buf, tt.err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}
