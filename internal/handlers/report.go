package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/sbilibin2017/gw-api-tools/internal/classifier"
)

// ReportError writes a single console line describing err.
func ReportError(w io.Writer, err error) {
	fmt.Fprintln(w, "[!] "+describe(err))
}

func describe(err error) string {
	var (
		decodeErr    *classifier.DecodeError
		apiErr       *classifier.APIError
		unknownErr   *classifier.UnknownAPIError
		transportErr *classifier.TransportError
		missingErr   *classifier.MissingFieldError
		networkErr   *classifier.NetworkError
	)

	switch {
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("Ошибка декодирования JSON: %v", decodeErr.Err)
	case errors.As(err, &apiErr):
		return "Ошибка API: " + apiErr.Message
	case errors.As(err, &unknownErr):
		if unknownErr.Type == "" {
			return "Неизвестная ошибка API"
		}
		return fmt.Sprintf("Неизвестная ошибка API: %s", unknownErr.Type)
	case errors.As(err, &transportErr):
		return fmt.Sprintf("HTTP ошибка: %s", transportErr.Error())
	case errors.As(err, &missingErr):
		return fmt.Sprintf("Ошибка при обработке данных: отсутствует ключ '%s'", missingErr.Field)
	case errors.As(err, &networkErr):
		if networkErr.Timeout() {
			return "Таймаут при запросе к серверу"
		}
		return "Ошибка подключения: сервер недоступен"
	default:
		return err.Error()
	}
}
