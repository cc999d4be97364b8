package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

type envelope map[string]any

// writeJSON writes data as-is: repository results, envelopes and raw nil
// (rendered as JSON null) all pass through unchanged.
func (app *application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	json, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	for key, values := range headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(json)

	return nil
}

func (app *application) parseJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)

	err := decoder.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("request body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("request body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("request body contains an invalid value for the %q field", unmarshalTypeError.Field)
			}
			return fmt.Errorf("request body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("request body must not be empty")
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("request body must not be larger than %d bytes", maxBytesError.Limit)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}
	err = decoder.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("request body must only contain a single JSON value")
	}
	return nil
}

// readIDParam returns the :id path segment untouched; the services decide
// whether it parses as an ObjectID.
func (app *application) readIDParam(r *http.Request, key string) (string, error) {
	params := httprouter.ParamsFromContext(r.Context())

	id := params.ByName(key)
	if id == "" {
		return "", errors.New("missing ID parameter")
	}

	return id, nil
}

// readPageLimitParams applies the pagination defaults: absent values fall
// back to page 1 and limit 6, present values must parse as integers.
func (app *application) readPageLimitParams(r *http.Request) (int, int, error) {
	params := r.URL.Query()

	page := 1
	limit := 6

	if params.Get("page") != "" {
		p, err := strconv.Atoi(params.Get("page"))
		if err != nil {
			return 0, 0, errors.New("invalid page parameter")
		}
		page = p
	}

	if params.Get("limit") != "" {
		l, err := strconv.Atoi(params.Get("limit"))
		if err != nil {
			return 0, 0, errors.New("invalid limit parameter")
		}
		limit = l
	}

	return page, limit, nil
}
