// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/placemap/internal/analysis"
	"github.com/tomtom215/placemap/internal/gallery"
	"github.com/tomtom215/placemap/internal/models"
)

// maxFilterLength bounds filter values; place types are short words.
const maxFilterLength = 64

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator with the view tags registered.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)

		// RegisterValidation only fails for an empty tag or a nil func.
		for tag, fn := range map[string]validator.Func{
			"videourl":   isVideoURL,
			"viewtab":    isTab,
			"viewsort":   isSortKey,
			"viewfilter": isFilter,
			"gallerykey": isGalleryKey,
		} {
			_ = validate.RegisterValidation(tag, fn)
		}
	})
	return validate
}

// jsonFieldName reports fields by their JSON name so errors match the body
// the client sent.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// ValidateStruct checks s against its validate tags. It returns nil when s
// is valid.
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{errors: []ValidationError{
			{field: "unknown", tag: "unknown", message: err.Error()},
		}}
	}

	out := make([]ValidationError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = ValidationError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			value:   fe.Value(),
			message: messageFor(fe),
		}
	}
	return &RequestValidationError{errors: out}
}

func isVideoURL(fl validator.FieldLevel) bool {
	return analysis.IsVideoURL(strings.TrimSpace(fl.Field().String()))
}

func isTab(fl validator.FieldLevel) bool {
	_, err := models.ParseTab(fl.Field().String())
	return err == nil
}

func isSortKey(fl validator.FieldLevel) bool {
	_, err := models.ParseSortKey(fl.Field().String())
	return err == nil
}

func isFilter(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) > maxFilterLength {
		return false
	}
	_, err := models.ParseFilter(s)
	return err == nil
}

func isGalleryKey(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case gallery.KeyEscape, gallery.KeyArrowLeft, gallery.KeyArrowRight:
		return true
	}
	return false
}
