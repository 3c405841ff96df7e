package httpHandler

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"starwars-api/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report the json key instead of
// the Go field name.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes and validates the request body into dst.
func bindJSON(c *gin.Context, dst any) error {
	useJSONFieldNames()

	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	switch {
	case errors.As(err, &fieldErrs):
		missing := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			missing = append(missing, fe.Field())
		}
		return apperrors.BadRequest("missing required field(s): %s", strings.Join(missing, ", ")).Wrap(err)
	case errors.Is(err, io.EOF):
		return apperrors.BadRequest("request body must be a JSON object").Wrap(err)
	}
	return apperrors.BadRequest("invalid request body: %s", err.Error()).Wrap(err)
}

// pathID reads a positive integer path parameter. Anything else cannot name
// a row, so it is reported as not found.
func pathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, apperrors.NotFound("%s %q not found", name, raw)
	}
	return uint(id), nil
}

// respondError writes err through the error translator.
func respondError(c *gin.Context, err error) {
	apiErr := apperrors.FromError(err)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		// surfaced by the request logger
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
}

// NotFound answers unknown routes with the API error body.
func NotFound(c *gin.Context) {
	respondError(c, apperrors.NotFound("resource %s not found", c.Request.URL.Path))
}

// MethodNotAllowed answers known paths hit with an unsupported verb.
func MethodNotAllowed(c *gin.Context) {
	respondError(c, apperrors.New("method not allowed", http.StatusMethodNotAllowed))
}
