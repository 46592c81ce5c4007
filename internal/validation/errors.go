// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// errorCode is the API error code for every request validation failure.
const errorCode = "VALIDATION_ERROR"

// ValidationError is one failed field of a request body.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field is the JSON name of the failed field.
func (e *ValidationError) Field() string { return e.field }

// Tag is the validate tag that rejected the field.
func (e *ValidationError) Tag() string { return e.tag }

// Param is the tag argument, "5" for max=5.
func (e *ValidationError) Param() string { return e.param }

// Value is the rejected input.
func (e *ValidationError) Value() interface{} { return e.value }

func (e *ValidationError) Error() string { return e.message }

// RequestValidationError collects every failed field of one request.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the failed fields in struct order.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(ve.errors))
	for i := range ve.errors {
		parts[i] = ve.errors[i].message
	}
	return strings.Join(parts, "; ")
}

// APIError is the code, message and details triple the api package renders.
// It is declared here so that validation does not import api.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError shapes the failure for a 400 response. A single field reports
// its name, tag and value; several fields are listed under "fields".
func (ve *RequestValidationError) ToAPIError() *APIError {
	switch len(ve.errors) {
	case 0:
		return &APIError{Code: errorCode, Message: "Validation failed"}
	case 1:
		e := ve.errors[0]
		return &APIError{
			Code:    errorCode,
			Message: e.message,
			Details: map[string]interface{}{"field": e.field, "tag": e.tag, "value": e.value},
		}
	}

	fields := make([]map[string]interface{}, 0, len(ve.errors))
	messages := make([]string, 0, len(ve.errors))
	for _, e := range ve.errors {
		fields = append(fields, map[string]interface{}{"field": e.field, "tag": e.tag, "message": e.message})
		messages = append(messages, e.field+": "+e.message)
	}
	return &APIError{
		Code:    errorCode,
		Message: strings.Join(messages, "; "),
		Details: map[string]interface{}{"fields": fields},
	}
}

// fieldMessages holds messages that only need the field name.
var fieldMessages = map[string]string{
	"required":   "%s is required",
	"url":        "%s must be a valid URL",
	"latitude":   "%s must be a valid latitude (-90 to 90)",
	"longitude":  "%s must be a valid longitude (-180 to 180)",
	"videourl":   "%s must be a YouTube video link",
	"viewtab":    "%s must be one of: map, list",
	"viewsort":   "%s must be one of: name, type, rating",
	"viewfilter": "%s must be \"all\" or a place type",
	"gallerykey": "%s must be one of: Escape, ArrowLeft, ArrowRight",
}

// paramMessages holds messages that also print the tag argument.
var paramMessages = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func messageFor(fe validator.FieldError) string {
	field, tag, param := fe.Field(), fe.Tag(), fe.Param()

	if tmpl, ok := fieldMessages[tag]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	if tmpl, ok := paramMessages[tag]; ok {
		return fmt.Sprintf(tmpl, field, param)
	}

	unit := ""
	if fe.Kind().String() == "string" {
		unit = " characters"
	}
	switch tag {
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", field, param, unit)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
