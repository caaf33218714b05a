package facades

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-api-tools/internal/classifier"
)

// get performs a single GET and returns the status code and the full body.
// Failures to obtain a response are returned as *classifier.NetworkError.
func get(ctx context.Context, client *http.Client, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, classifier.NewNetworkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, classifier.NewNetworkError(fmt.Errorf("read response: %w", err))
	}

	return resp.StatusCode, body, nil
}
