// Package validation holds the struct validator and YAML error helpers shared
// by the document, settings and token loaders.
package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hex6Pattern   = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

// Instance returns the process-wide validator. Namespace() in its errors uses
// yaml field names; StructNamespace() keeps the Go names. The "hex6" tag
// accepts exactly six hex digits with no prefix.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("hex6", func(fl validator.FieldLevel) bool {
			return hex6Pattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Line returns the line number a yaml.v3 error message points at, or 0.
func Line(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}

	return line
}
