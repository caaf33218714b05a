package middlewares

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// EchoTransport returns an http.RoundTripper that prints the address of every
// outgoing request to w before sending it. Secrets in the address are masked.
func EchoTransport(w io.Writer, next http.RoundTripper, secrets ...string) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &echoTransport{w: w, next: next, secrets: secrets}
}

type echoTransport struct {
	w       io.Writer
	next    http.RoundTripper
	secrets []string
}

func (t *echoTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	addr := r.URL.String()
	if unescaped, err := url.PathUnescape(addr); err == nil {
		addr = unescaped
	}
	fmt.Fprintf(t.w, "[->] Запрос по адресу %s\n", maskSecrets(addr, t.secrets))
	return t.next.RoundTrip(r)
}
