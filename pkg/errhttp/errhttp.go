// Package errhttp turns errors from the fridge services into HTTP responses.
package errhttp

import (
	"context"
	"errors"
	"net/http"

	"github.com/ghuser/fridgekeeper/pkg/httpx"
	fridgedomain "github.com/ghuser/fridgekeeper/services/fridge/domain"
)

// statusTable is checked in order with errors.Is; the first match wins.
var statusTable = []struct {
	target error
	status int
}{
	{fridgedomain.ErrInvalidFillFactor, http.StatusUnprocessableEntity},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// WriteError writes err as {"error": ...} with its mapped status.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, StatusOf(err), err.Error())
}

// WriteSafeError is WriteError with 5xx messages hidden when isProduction is set.
func WriteSafeError(w http.ResponseWriter, err error, isProduction bool) {
	status := StatusOf(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

// StatusOf returns the HTTP status for err; unknown errors are 500.
func StatusOf(err error) int {
	for _, e := range statusTable {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
