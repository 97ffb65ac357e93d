package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/sdui/internal/validation"
	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

// Load reads settings from path. An empty path yields Default(). Keys absent
// from the file keep their default values. A relative tokens path is resolved
// against the directory of the settings file.
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, sduierrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, sduierrors.NewParseError(path, validation.Line(err), err)
	}

	settings.Theme.Mode = strings.ToLower(strings.TrimSpace(settings.Theme.Mode))
	settings.Log.Level = strings.ToLower(strings.TrimSpace(settings.Log.Level))
	if tokens := settings.Theme.Tokens; tokens != "" && !filepath.IsAbs(tokens) {
		settings.Theme.Tokens = filepath.Join(filepath.Dir(path), tokens)
	}

	if err := Validate(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks settings against their declared bounds.
func Validate(settings Settings) error {
	if err := validation.Instance().Struct(settings); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return sduierrors.NewSchemaError("settings", err.Error(), err)
	}

	first := validationErrs[0]
	field := first.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}

	var message string
	switch first.Tag() {
	case "required":
		message = "is required"
	case "oneof":
		message = fmt.Sprintf("must be one of [%s]", first.Param())
	case "min":
		message = fmt.Sprintf("must be at least %s", first.Param())
	case "max":
		message = fmt.Sprintf("must be at most %s", first.Param())
	default:
		message = fmt.Sprintf("failed %s validation", first.Tag())
	}

	return sduierrors.NewSchemaError(field, message, err)
}
