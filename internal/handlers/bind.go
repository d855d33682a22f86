package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/winhire/interview-engine/internal/httperr"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report the json name of the
// offending field.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes the body into req. On failure it writes a validation
// error naming the field and returns false.
func bindJSON(c *gin.Context, req any) bool {
	useJSONFieldNames()

	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		httperr.Respond(c, httperr.Validation(fe.Field(), fmt.Sprintf("%s failed the %q rule", fe.Field(), fe.Tag())))
		return false
	}

	httperr.Respond(c, httperr.Validation("body", "request body is not valid JSON for this operation"))
	return false
}

// pathID reads a positive integer path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.Respond(c, httperr.Validation(name, name+" must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}

// queryID reads a required positive integer query parameter.
func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.Respond(c, httperr.Validation(name, name+" must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}
