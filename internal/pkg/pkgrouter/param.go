package pkgrouter

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// GetParam reads a path parameter captured by the router, e.g. ":image".
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// QueryFloat parses the query value key as a finite float64.
// ok is false when the key is absent or blank.
func QueryFloat(r *http.Request, key string) (v float64, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, false, nil
	}

	v, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%s: %q is not a number", key, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, true, fmt.Errorf("%s: must be a finite number", key)
	}

	return v, true, nil
}
