package customization

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/typepreview/pkg/errors"
)

func TestValuesValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Values)
		field   string
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Values) {}},
		{name: "lower bound", mutate: func(v *Values) { v.FontSize = MinFontSize }},
		{name: "upper bound", mutate: func(v *Values) { v.FontSize = MaxFontSize }},
		{name: "empty text allowed", mutate: func(v *Values) { v.Text = "" }},
		{name: "size too small", mutate: func(v *Values) { v.FontSize = 9.5 }, field: "size", wantErr: true},
		{name: "size too large", mutate: func(v *Values) { v.FontSize = 81 }, field: "size", wantErr: true},
		{name: "bad weight", mutate: func(v *Values) { v.Weight = "heavy" }, field: "weight", wantErr: true},
		{name: "bad style", mutate: func(v *Values) { v.Style = "oblique" }, field: "style", wantErr: true},
		{name: "unknown color", mutate: func(v *Values) { v.Color = "Magenta" }, field: "color", wantErr: true},
		{name: "unknown font", mutate: func(v *Values) { v.FontFamily = "Comic Sans" }, field: "font", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := DefaultValues()
			tt.mutate(&v)
			err := v.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestClampFontSize(t *testing.T) {
	t.Parallel()

	require.Equal(t, MinFontSize, ClampFontSize(-3))
	require.Equal(t, MaxFontSize, ClampFontSize(120))
	require.Equal(t, 42.0, ClampFontSize(42))
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	families := FontFamilies()
	families[0] = "Mutated"
	require.Equal(t, "Pacifico", FontFamilies()[0])

	swatches := Palette()
	swatches[0].Name = "Mutated"
	require.Equal(t, "Indigo", Palette()[0].Name)
}

func TestCatalogLookups(t *testing.T) {
	t.Parallel()

	require.True(t, HasFontFamily("Roboto"))
	require.False(t, HasFontFamily("roboto"))

	indigo, ok := LookupColor("Indigo")
	require.True(t, ok)
	require.Equal(t, "#3f51b5", indigo.Hex())

	_, ok = LookupColor("Magenta")
	require.False(t, ok)

	require.Len(t, ColorNames(), len(Palette()))
	require.Contains(t, ColorNames(), DefaultColor)
	require.Contains(t, FontFamilies(), DefaultFontFamily)
}
