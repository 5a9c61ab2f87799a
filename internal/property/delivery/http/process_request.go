package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "property-listing/pkg/errors"
	"property-listing/pkg/paginator"
)

const msgInvalidBody = "request body must be a valid JSON object"

var errNotFinite = errors.New("not a finite number")

// processListReq parses filter and pagination query parameters.
// Every malformed parameter contributes one message.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var (
		req  listReq
		msgs []string
		err  error
	)

	req.Filter.Title = strings.TrimSpace(c.Query("title"))

	if req.Filter.MinPrice, err = parsePrice(c.Query("minPrice")); err != nil {
		msgs = append(msgs, "minPrice must be a number")
	}
	if req.Filter.MaxPrice, err = parsePrice(c.Query("maxPrice")); err != nil {
		msgs = append(msgs, "maxPrice must be a number")
	}

	req.Page, err = paginator.ParsePageRequest(c.Query("page"), c.Query("limit"))
	if err != nil {
		for _, target := range []error{paginator.ErrInvalidPage, paginator.ErrInvalidLimit} {
			if errors.Is(err, target) {
				msgs = append(msgs, target.Error())
			}
		}
	}

	if len(msgs) > 0 {
		return req, pkgErrors.NewValidationHTTPError(msgs...)
	}
	return req, nil
}

// parsePrice treats an empty value as absent. NaN and infinities are rejected.
func parsePrice(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errNotFinite
	}
	return &v, nil
}

// processCreateReq binds the create property request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

// processUpdateReq binds the update property request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	req.ID = c.Param("id")
	return req, nil
}

// bindError names the offending field when a JSON value has the wrong type.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return pkgErrors.NewValidationHTTPError(fmt.Sprintf("%s must be a %s", typeErr.Field, jsonKind(typeErr.Type)))
	}
	return pkgErrors.NewValidationHTTPError(msgInvalidBody)
}

func jsonKind(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "valid value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "list"
	default:
		return "object"
	}
}
