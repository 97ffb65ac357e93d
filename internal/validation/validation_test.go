package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "no line", err: errors.New("boom"), want: 0},
		{name: "plain message", err: errors.New("yaml: line 7: did not find expected key"), want: 7},
		{name: "first match wins", err: errors.New("line 3: then line 9"), want: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Line(tt.err))
		})
	}

	t.Run("decoder error", func(t *testing.T) {
		t.Parallel()
		var out map[string]any
		err := yaml.Unmarshal([]byte("a: 1\nb: [\n"), &out)
		require.Error(t, err)
		require.Positive(t, Line(err))
	})
}

func TestInstance(t *testing.T) {
	t.Parallel()

	require.Same(t, Instance(), Instance())

	type swatch struct {
		Primary string `yaml:"primary" validate:"hex6"`
		Count   int    `yaml:"count" validate:"min=1"`
	}

	t.Run("hex6 accepts bare six digits", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Instance().Struct(swatch{Primary: "6750a4", Count: 1}))
	})

	t.Run("hex6 rejects prefix and short forms", func(t *testing.T) {
		t.Parallel()
		for _, value := range []string{"#6750A4", "ABC", "6750A4FF", ""} {
			require.Error(t, Instance().Struct(swatch{Primary: value, Count: 1}), value)
		}
	})

	t.Run("errors use yaml names", func(t *testing.T) {
		t.Parallel()
		err := Instance().Struct(swatch{Primary: "6750A4"})
		var ves validator.ValidationErrors
		require.ErrorAs(t, err, &ves)
		require.Equal(t, "swatch.count", ves[0].Namespace())
		require.Equal(t, "swatch.Count", ves[0].StructNamespace())
	})
}
