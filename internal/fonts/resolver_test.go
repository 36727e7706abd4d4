package fonts

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"

	"github.com/alexisbeaulieu97/typepreview/internal/customization"
	apperrors "github.com/alexisbeaulieu97/typepreview/pkg/errors"
)

func TestCatalogResolvesEveryFamily(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	for _, name := range customization.FontFamilies() {
		desc, err := c.Resolve(name)
		require.NoError(t, err, name)
		require.Equal(t, name, desc.Family)
		require.NotEmpty(t, desc.Category)
		require.Equal(t, "Go", desc.Source)
	}
	require.Len(t, c.Families(), len(customization.FontFamilies()))
}

func TestCatalogResolveRoboto(t *testing.T) {
	t.Parallel()

	desc, err := NewCatalog().Resolve("Roboto")
	require.NoError(t, err)
	require.Equal(t, Descriptor{Family: "Roboto", Category: CategorySansSerif, Source: "Go"}, desc)
	require.Equal(t, "Roboto (sans-serif)", desc.String())
}

func TestCatalogResolveUnknownFamily(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog().Resolve("Comic Sans")

	var resolveErr *apperrors.ResolveError
	require.ErrorAs(t, err, &resolveErr)
	require.Equal(t, "Comic Sans", resolveErr.Family)
}

func TestCatalogFaceVariants(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	desc, err := c.Resolve("Pacifico")
	require.NoError(t, err)

	regular, err := c.Face(desc, customization.WeightNormal, customization.StyleNormal, 32, 72)
	require.NoError(t, err)
	defer regular.Close()

	bold, err := c.Face(desc, customization.WeightBold, customization.StyleNormal, 32, 72)
	require.NoError(t, err)
	defer bold.Close()

	require.Greater(t, regular.Metrics().Height.Ceil(), 0)
	require.NotEqual(t, font.MeasureString(regular, "Welcome"), font.MeasureString(bold, "Welcome"))

	large, err := c.Face(desc, customization.WeightNormal, customization.StyleNormal, 64, 72)
	require.NoError(t, err)
	defer large.Close()
	require.Greater(t, font.MeasureString(large, "Welcome"), font.MeasureString(regular, "Welcome"))
}

func TestCatalogFaceCachesOutlines(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	desc, err := c.Resolve("Lato")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		face, err := c.Face(desc, customization.WeightNormal, customization.StyleItalic, 12, 0)
		require.NoError(t, err)
		face.Close()
	}
	require.Len(t, c.parsed, 1)
}

func TestCatalogFaceRejectsNonPositiveSize(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	desc, err := c.Resolve("Lato")
	require.NoError(t, err)

	_, err = c.Face(desc, customization.WeightNormal, customization.StyleNormal, 0, 72)
	require.Error(t, err)
}
