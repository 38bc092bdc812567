package prompt

import (
	"strings"
	"testing"

	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	scratchMarker  = "NO REFERENCE IMAGE PROVIDED"
	likenessMarker = "Preserve the key features/likeness"
	dualMarker     = "You are provided with TWO reference images."
)

var roleLabels = []string{
	"TOP CAPTION", "MAIN HEADLINE 1", "HEADLINE 2", "SUBTITLE", "BOTTOM CAPTION", "TAGLINE",
}

func TestCompose_Idempotent(t *testing.T) {
	form := domain.NewFormData()
	form.Theme = catalog.ThemeTravel
	form.MainText = "GO"
	form.AddAtmosphere(string(catalog.BackgroundBeachClub))
	form.ReferenceImage = domain.NewDataURI("image/jpeg", []byte("a"))
	form.SecondReferenceImage = domain.NewDataURI("image/png", []byte("b"))

	first, err := Compose(form)
	require.NoError(t, err)
	second, err := Compose(form)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompose_Fallbacks(t *testing.T) {
	form := domain.NewFormData()
	form.Theme = catalog.ThemeSelfLove

	c, err := Compose(form)
	require.NoError(t, err)

	assert.Contains(t, c.Text, "1. CORE CONCEPT & THEME: "+string(catalog.ThemeSelfLove))
	assert.Contains(t, c.Text, "Aesthetic Style: "+FallbackAesthetic)
	assert.Contains(t, c.Text, "Atmosphere/Background Mix: "+FallbackAtmosphere)
	assert.NotContains(t, c.Text, FallbackTheme)

	t.Run("テーマ未選択ならテーマもフォールバック", func(t *testing.T) {
		c, err := Compose(domain.NewFormData())
		require.NoError(t, err)
		assert.Contains(t, c.Text, "THEME: "+FallbackTheme)
		assert.Contains(t, c.Text, `embodies the "`+FallbackTheme+`" theme`)
	})
}

func TestCompose_AtmosphereJoinedInOrder(t *testing.T) {
	form := domain.NewFormData()
	form.AddAtmosphere("second")
	form.AddAtmosphere("first")

	c, err := Compose(form)
	require.NoError(t, err)
	assert.Contains(t, c.Text, "Atmosphere/Background Mix: second, first\n")
}

func TestCompose_ReferenceBranches(t *testing.T) {
	primary := domain.NewDataURI("image/jpeg", []byte("primary"))
	secondary := domain.NewDataURI("image/webp", []byte("secondary"))

	t.Run("参照画像なし", func(t *testing.T) {
		c, err := Compose(domain.NewFormData())
		require.NoError(t, err)
		assert.Empty(t, c.Attachments)
		assert.Contains(t, c.Text, scratchMarker)
		assert.NotContains(t, c.Text, likenessMarker)
		assert.NotContains(t, c.Text, dualMarker)
	})

	t.Run("1 枚", func(t *testing.T) {
		form := domain.NewFormData()
		form.Aesthetic = catalog.StyleJapandi
		form.ReferenceImage = primary

		c, err := Compose(form)
		require.NoError(t, err)
		require.Len(t, c.Attachments, 1)
		assert.Contains(t, c.Text, likenessMarker)
		assert.Contains(t, c.Text, `match the "`+string(catalog.StyleJapandi)+`" aesthetic`)
		assert.NotContains(t, c.Text, scratchMarker)
	})

	t.Run("2 枚は (primary, secondary) の順", func(t *testing.T) {
		form := domain.NewFormData()
		form.ReferenceImage = primary
		form.SecondReferenceImage = secondary

		c, err := Compose(form)
		require.NoError(t, err)
		require.Len(t, c.Attachments, 2)
		assert.Equal(t, domain.Attachment{MimeType: "image/jpeg", Data: []byte("primary")}, c.Attachments[0])
		assert.Equal(t, domain.Attachment{MimeType: "image/webp", Data: []byte("secondary")}, c.Attachments[1])
		assert.Contains(t, c.Text, dualMarker)
		assert.NotContains(t, c.Text, likenessMarker)
		assert.NotContains(t, c.Text, scratchMarker)
	})

	t.Run("壊れた data URI はエラー", func(t *testing.T) {
		form := domain.NewFormData()
		form.ReferenceImage = "data:image/png;base64,%%%"
		_, err := Compose(form)
		assert.ErrorIs(t, err, domain.ErrInvalidDataURI)
	})
}

func TestCompose_Typography(t *testing.T) {
	t.Run("全欄が空白なら文字なし指示のみ", func(t *testing.T) {
		form := domain.NewFormData()
		form.TextTop = "  "
		form.MainText = "\t"
		form.SecondaryText = ""
		form.SubText = "\n"
		form.TextBottom = " "
		form.Tagline = "   "

		c, err := Compose(form)
		require.NoError(t, err)
		assert.Contains(t, c.Text, "DO NOT INCLUDE ANY TEXT, WORDS, OR LETTERS.")
		for _, label := range roleLabels {
			assert.NotContains(t, c.Text, label)
		}
		assert.NotContains(t, c.Text, "TEXT COMPOSITION LAYOUT")
	})

	t.Run("役割ラベルは固定順でレイアウトを厳守指示", func(t *testing.T) {
		form := domain.NewFormData()
		form.CompositionLayout = catalog.LayoutSwissGrid
		form.TextBottom = "2026"
		form.MainText = "Дом мечты"
		form.TextTop = "VOGUE"

		c, err := Compose(form)
		require.NoError(t, err)
		assert.Contains(t, c.Text, "TEXT COMPOSITION LAYOUT: "+string(catalog.LayoutSwissGrid))
		assert.Contains(t, c.Text, `MAIN HEADLINE 1 (Large, Prominent, Elegant Serif/Display): "Дом мечты"`)
		assert.NotContains(t, c.Text, "DO NOT INCLUDE ANY TEXT")

		top := strings.Index(c.Text, "TOP CAPTION")
		main := strings.Index(c.Text, "MAIN HEADLINE 1")
		bottom := strings.Index(c.Text, "BOTTOM CAPTION")
		assert.True(t, top < main && main < bottom)
	})

	t.Run("タグラインは下部キャプションがない場合のみ", func(t *testing.T) {
		form := domain.NewFormData()
		form.Tagline = "believe"

		c, err := Compose(form)
		require.NoError(t, err)
		assert.Contains(t, c.Text, `TAGLINE: "believe"`)

		form.TextBottom = "footer"
		c, err = Compose(form)
		require.NoError(t, err)
		assert.NotContains(t, c.Text, "TAGLINE")
		assert.Contains(t, c.Text, `BOTTOM CAPTION (Minimalist, footer/date): "footer"`)
	})
}

func TestCompose_Collage(t *testing.T) {
	t.Run("コラージュなしは単一シーン指示", func(t *testing.T) {
		c, err := Compose(domain.NewFormData())
		require.NoError(t, err)
		assert.Contains(t, c.Text, "Do NOT create a collage.")
		assert.NotContains(t, c.Text, "SOPHISTICATED COLLAGE")
		assert.NotContains(t, c.Text, "ARTIST STYLE REFERENCE")
	})

	t.Run("個別説明を持つ技法", func(t *testing.T) {
		cases := map[catalog.CollageTechnique]string{
			catalog.CollagePaintOverlay:   "ACRYLIC BRUSH STROKES",
			catalog.CollageGoldLeaf:       "GOLD LEAF (Kintsugi style)",
			catalog.CollageOutlineDrawing: "HAND-DRAWN WHITE OUTLINES",
		}
		for technique, marker := range cases {
			form := domain.NewFormData()
			form.SetCollageTechnique(technique)
			c, err := Compose(form)
			require.NoError(t, err)
			assert.Contains(t, c.Text, marker)
			assert.Contains(t, c.Text, "SOPHISTICATED COLLAGE & MIXED MEDIA ("+string(technique)+")")
			assert.NotContains(t, c.Text, "Do NOT create a collage.")
		}
	})

	t.Run("汎用技法は共通説明のみで作家指定を含む", func(t *testing.T) {
		form := domain.NewFormData()
		form.SetCollageTechnique(catalog.CollageDada)
		form.CollageArtist = catalog.ArtistHannahHoch

		c, err := Compose(form)
		require.NoError(t, err)
		assert.Contains(t, c.Text, "ripped paper edges, tape overlays")
		assert.NotContains(t, c.Text, "SPECIFIC DETAILS")
		assert.Contains(t, c.Text, "Channel the visual style of "+string(catalog.ArtistHannahHoch))
	})
}

func TestCompose_Lighting(t *testing.T) {
	c, err := Compose(domain.NewFormData())
	require.NoError(t, err)
	assert.Contains(t, c.Text, CinematicLighting)

	form := domain.NewFormData()
	form.LightEffect = catalog.LightGodRays
	c, err = Compose(form)
	require.NoError(t, err)
	assert.Contains(t, c.Text, `Apply the "`+string(catalog.LightGodRays)+`" effect prominently.`)
	assert.NotContains(t, c.Text, CinematicLighting)
}

func TestCompose_AspectRatioIsStructured(t *testing.T) {
	form := domain.NewFormData()
	form.AspectRatio = catalog.AspectCinematic

	c, err := Compose(form)
	require.NoError(t, err)
	assert.Equal(t, catalog.AspectCinematic, c.AspectRatio)
	assert.NotContains(t, c.Text, "16:9")
}

func TestCompose_SectionOrder(t *testing.T) {
	c, err := Compose(domain.NewFormData())
	require.NoError(t, err)

	markers := []string{"ROLE:", "1. CORE CONCEPT", "2. TYPOGRAPHY", "3. VISUAL ELEMENTS", "4. CREATIVE DIRECTION", scratchMarker}
	last := -1
	for _, m := range markers {
		idx := strings.Index(c.Text, m)
		require.GreaterOrEqual(t, idx, 0, m)
		assert.Greater(t, idx, last, m)
		last = idx
	}
}
