package finanza

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
)

// rewriteTo redirects every request to the test server, whatever host the
// code under test asked for.
type rewriteTo struct{ target *url.URL }

func (r rewriteTo) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = r.target.Scheme
	req.URL.Host = r.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func bcvTestClient(t *testing.T, handler http.HandlerFunc) *http.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Client{Transport: rewriteTo{u}}
}

func Test_fetchBCVRate(t *testing.T) {
	client := bcvTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"fuente":"oficial","nombre":"Oficial","promedio":36.58,"fechaActualizacion":"2024-01-15T12:00:00.000Z"}`))
	})
	rate, err := fetchBCVRate(client)
	if err != nil {
		t.Fatalf("fetchBCVRate() unexpected error = %v", err)
	}
	if !rate.Equal(decimal.NewFromFloat(36.58)) {
		t.Errorf("fetchBCVRate() = %v, want 36.58", rate)
	}
}

func Test_fetchBCVRate_ZeroQuote(t *testing.T) {
	client := bcvTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"promedio":0}`))
	})
	_, err := fetchBCVRate(client)
	var stale *StaleRateError
	if !errors.As(err, &stale) {
		t.Errorf("fetchBCVRate() error = %v, want StaleRateError", err)
	}
}

func Test_fetchBCVRate_BadStatus(t *testing.T) {
	client := bcvTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	})
	if _, err := fetchBCVRate(client); err == nil {
		t.Error("fetchBCVRate() accepted a non-200 response")
	}
}

func Test_fetchBCVRate_MissingField(t *testing.T) {
	client := bcvTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"fuente":"oficial"}`))
	})
	if _, err := fetchBCVRate(client); err == nil {
		t.Error("fetchBCVRate() accepted a quote without promedio")
	}
}
