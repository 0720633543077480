package finanza

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	{
	    "fuente": "oficial",
	    "nombre": "Oficial",
	    "compra": null,
	    "venta": null,
	    "promedio": 36.58,
	    "fechaActualizacion": "2024-01-15T12:00:00.000Z"
	}
*/
const bcvURL = "https://ve.dolarapi.com/v1/dolares/oficial"

// FetchBCVRate returns the official BCV exchange rate in VES per USD, from
// the dolarapi mirror. Responses are cached on disk with a daily expiry.
//
// The returned rate is always strictly positive: a zero or malformed quote
// is an error, never a value a caller could accidentally convert with.
func FetchBCVRate() (decimal.Decimal, error) {
	return fetchBCVRate(daily())
}

func fetchBCVRate(client *http.Client) (decimal.Decimal, error) {
	var jobj any
	if err := jwget(client, bcvURL, &jobj); err != nil {
		return decimal.Decimal{}, fmt.Errorf("error in wget %q: %w", "BCV", err)
	}
	path := "$.promedio"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error parsing %q: %q %w", "BCV", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("error parsing %q: %q %s %v", "BCV", path, "not a float", jval)
	}
	rate := decimal.NewFromFloat(val)
	if !rate.IsPositive() {
		return decimal.Decimal{}, &StaleRateError{From: ReferenceCurrency, To: VES}
	}
	return rate, nil
}
