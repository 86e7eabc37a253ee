package main

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"gymspot/internal/domain/venues"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// init registers the venue enum validators and makes validation errors
// report JSON field names.
func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	Validate.RegisterValidation("pricetier", func(fl validator.FieldLevel) bool {
		return venues.PriceTier(fl.Field().String()).Valid()
	})
	Validate.RegisterValidation("venuekind", func(fl validator.FieldLevel) bool {
		return venues.Kind(fl.Field().String()).Valid()
	})
	Validate.RegisterValidation("venuestatus", func(fl validator.FieldLevel) bool {
		return venues.Status(fl.Field().String()).Valid()
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	type envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	}

	return writeJSON(w, status, &envelope{
		Success: false,
		Message: message,
		Status:  status,
	})
}

func writeJSONFieldErrors(w http.ResponseWriter, fields map[string]string) error {
	type envelope struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Status  int               `json:"status"`
		Errors  map[string]string `json:"errors"`
	}

	return writeJSON(w, http.StatusBadRequest, &envelope{
		Message: "validation failed",
		Status:  http.StatusBadRequest,
		Errors:  fields,
	})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	type envelope struct {
		Data any `json:"data"`
	}
	return writeJSON(w, status, &envelope{Data: data})
}
