package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertUnique[T ~string](t *testing.T, name string, values []T) {
	t.Helper()
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		assert.NotEmpty(t, v, "%s に空の値があります", name)
		_, dup := seen[v]
		assert.False(t, dup, "%s に重複があります: %s", name, v)
		seen[v] = struct{}{}
	}
}

func TestCatalog_ValuesAreUniqueAndNonEmpty(t *testing.T) {
	assertUnique(t, "themes", AllThemes)
	assertUnique(t, "styles", AllStyles)
	assertUnique(t, "backgrounds", AllBackgrounds)
	assertUnique(t, "light effects", AllLightEffects)
	assertUnique(t, "collage techniques", AllCollageTechniques)
	assertUnique(t, "collage artists", AllCollageArtists)
	assertUnique(t, "layouts", AllCompositionLayouts)
	assertUnique(t, "aspect ratios", AllAspectRatios)

	assert.Len(t, AllThemes, 20)
	assert.Len(t, AllAspectRatios, 5)
}

func TestCatalog_Valid(t *testing.T) {
	t.Run("列挙値は有効", func(t *testing.T) {
		assert.True(t, ThemeSelfLove.Valid())
		assert.True(t, StyleOldMoney.Valid())
		assert.True(t, BackgroundZenGarden.Valid())
		assert.True(t, LightGodRays.Valid())
		assert.True(t, CollageGoldLeaf.Valid())
		assert.True(t, ArtistManRay.Valid())
		assert.True(t, LayoutSwissGrid.Valid())
		assert.True(t, AspectStory.Valid())
	})

	t.Run("未知の値は無効", func(t *testing.T) {
		assert.False(t, Theme("Something else").Valid())
		assert.False(t, AspectRatio("2:3").Valid())
		assert.False(t, CollageArtist("").Valid())
	})
}

func TestCollageTechnique_IsCollage(t *testing.T) {
	assert.False(t, CollageNone.IsCollage())
	assert.True(t, CollagePaintOverlay.IsCollage())
}

func TestStrings(t *testing.T) {
	got := Strings([]AspectRatio{AspectSquare, AspectCinematic})
	assert.Equal(t, []string{"1:1", "16:9"}, got)
}
