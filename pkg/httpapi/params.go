package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
)

// searchParams is the validated shape of GET /v1/search's query string.
type searchParams struct {
	Query  string `validate:"required"`
	Limit  int    `validate:"gte=1,lte=100"`
	Offset int    `validate:"gte=0"`
}

func parseSearchParams(r *http.Request) (searchParams, error) {
	q := r.URL.Query()

	params := searchParams{
		Query:  q.Get("q"),
		Limit:  20,
		Offset: 0,
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return searchParams{}, fmt.Errorf("%w: limit must be an integer", errBadRequest)
		}
		params.Limit = limit
	}

	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return searchParams{}, fmt.Errorf("%w: offset must be an integer", errBadRequest)
		}
		params.Offset = offset
	}

	if err := DefaultValidator().Struct(params); err != nil {
		return searchParams{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}

	return params, nil
}
