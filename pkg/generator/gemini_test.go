package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/imgutil"
	"github.com/shouni/vision-board-kit/pkg/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestGenerator(t *testing.T, model *mockModel) *GeminiGenerator {
	t.Helper()
	core, err := NewGeminiImageCore(model, imgutil.Options{})
	require.NoError(t, err)
	gen, err := NewGeminiGenerator(core, model, "", "")
	require.NoError(t, err)
	return gen
}

func TestNewGeminiGenerator(t *testing.T) {
	t.Run("nilチェック: 依存関係が足りない場合はエラーを返す", func(t *testing.T) {
		_, err := NewGeminiGenerator(nil, nil, "", "")
		assert.Error(t, err)

		core, _ := NewGeminiImageCore(&mockModel{}, imgutil.Options{})
		_, err = NewGeminiGenerator(core, nil, "", "")
		assert.Error(t, err)
	})

	t.Run("モデル名の既定値", func(t *testing.T) {
		gen := newTestGenerator(t, &mockModel{})
		assert.Equal(t, DefaultImageModel, gen.imageModel)
		assert.Equal(t, DefaultTextModel, gen.textModel)
	})
}

func TestGeminiGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("成功: プロンプト、参照画像、アスペクト比が送られる", func(t *testing.T) {
		model := &mockModel{
			generateFunc: func(ctx context.Context, m string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return imageResponse("image/png", []byte("poster")), nil
			},
		}
		gen := newTestGenerator(t, model)

		comp := prompt.Composition{
			Text: "ROLE: art director",
			Attachments: []domain.Attachment{
				{MimeType: "image/jpeg", Data: []byte("first")},
				{MimeType: "image/png", Data: []byte("second")},
			},
			AspectRatio: catalog.AspectStory,
		}
		res, err := gen.Generate(ctx, comp)
		require.NoError(t, err)
		assert.Equal(t, comp.Text, res.Prompt)
		assert.Equal(t, domain.NewDataURI("image/png", []byte("poster")), res.Image)

		call := model.lastCall()
		assert.Equal(t, DefaultImageModel, call.model)
		assert.Equal(t, "9:16", call.config.ImageConfig.AspectRatio)

		parts := call.contents[0].Parts
		require.Len(t, parts, 3)
		assert.Equal(t, comp.Text, parts[0].Text)
		assert.Equal(t, []byte("first"), parts[1].InlineData.Data)
		assert.Equal(t, []byte("second"), parts[2].InlineData.Data)
	})

	t.Run("画像なしの応答は GenerationError(ErrNoImageInResponse)", func(t *testing.T) {
		model := &mockModel{
			generateFunc: func(ctx context.Context, m string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse("sorry"), nil
			},
		}
		gen := newTestGenerator(t, model)

		_, err := gen.Generate(ctx, prompt.Composition{Text: "p", AspectRatio: catalog.AspectSquare})
		var genErr *GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, "p", genErr.Prompt)
		assert.ErrorIs(t, err, ErrNoImageInResponse)
	})

	t.Run("通信エラーもラップされる", func(t *testing.T) {
		boom := errors.New("quota exceeded")
		model := &mockModel{
			generateFunc: func(ctx context.Context, m string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, boom
			},
		}
		gen := newTestGenerator(t, model)

		_, err := gen.Generate(ctx, prompt.Composition{Text: "p"})
		var genErr *GenerationError
		assert.ErrorAs(t, err, &genErr)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "Gemini画像生成エラー")
	})
}

func TestGeminiGenerator_RemoveContent(t *testing.T) {
	ctx := context.Background()
	source := domain.NewDataURI("image/jpeg", []byte("with-text"))

	t.Run("画像パーツが先、指示が後", func(t *testing.T) {
		model := &mockModel{
			generateFunc: func(ctx context.Context, m string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return imageResponse("image/png", []byte("clean")), nil
			},
		}
		gen := newTestGenerator(t, model)

		out, err := gen.RemoveContent(ctx, source, domain.RemoveTextOnly)
		require.NoError(t, err)
		assert.Equal(t, domain.NewDataURI("image/png", []byte("clean")), out)

		parts := model.lastCall().contents[0].Parts
		require.Len(t, parts, 2)
		require.NotNil(t, parts[0].InlineData)
		assert.Equal(t, "image/jpeg", parts[0].InlineData.MIMEType)
		assert.Equal(t, []byte("with-text"), parts[0].InlineData.Data)
		assert.Contains(t, parts[1].Text, "REMOVE TEXT BUT PRESERVE EVERYTHING ELSE")
	})

	t.Run("remove_all の指示", func(t *testing.T) {
		model := &mockModel{
			generateFunc: func(ctx context.Context, m string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return imageResponse("image/png", []byte("bg")), nil
			},
		}
		gen := newTestGenerator(t, model)

		_, err := gen.RemoveContent(ctx, source, domain.RemoveAll)
		require.NoError(t, err)
		assert.Contains(t, model.lastCall().contents[0].Parts[1].Text, "REMOVE THE MAIN SUBJECT/PERSON AND ALL TEXT")
	})

	t.Run("画像なしの応答は EditError", func(t *testing.T) {
		model := &mockModel{
			generateFunc: func(ctx context.Context, m string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse("cannot"), nil
			},
		}
		gen := newTestGenerator(t, model)

		_, err := gen.RemoveContent(ctx, source, domain.RemoveAll)
		var editErr *EditError
		require.ErrorAs(t, err, &editErr)
		assert.Equal(t, domain.RemoveAll, editErr.Mode)
		assert.ErrorIs(t, err, ErrNoImageInResponse)
	})

	t.Run("不正なモードや画像は送信しない", func(t *testing.T) {
		model := &mockModel{}
		gen := newTestGenerator(t, model)

		_, err := gen.RemoveContent(ctx, source, "blur")
		assert.ErrorIs(t, err, domain.ErrInvalidRemoveMode)

		_, err = gen.RemoveContent(ctx, "not-a-data-uri", domain.RemoveTextOnly)
		assert.ErrorIs(t, err, domain.ErrInvalidDataURI)

		assert.Empty(t, model.calls)
	})
}

func TestGeminiGenerator_SuggestDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("テキストモデルの応答を返す", func(t *testing.T) {
		model := &mockModel{
			generateFunc: func(ctx context.Context, m string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse(`"silk ribbon, white roses, pearls, candles, champagne"` + "\n"), nil
			},
		}
		gen := newTestGenerator(t, model)

		got := gen.SuggestDetails(ctx, "Travel", "Boho", []string{"sea"})
		assert.Equal(t, "silk ribbon, white roses, pearls, candles, champagne", got)
		assert.Equal(t, DefaultTextModel, model.lastCall().model)
	})

	t.Run("失敗時は既定値", func(t *testing.T) {
		model := &mockModel{
			generateFunc: func(ctx context.Context, m string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, errors.New("offline")
			},
		}
		gen := newTestGenerator(t, model)
		assert.Equal(t, FallbackSuggestion, gen.SuggestDetails(ctx, "", "", nil))
	})

	t.Run("空の応答も既定値", func(t *testing.T) {
		model := &mockModel{
			generateFunc: func(ctx context.Context, m string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse("   "), nil
			},
		}
		gen := newTestGenerator(t, model)
		assert.Equal(t, FallbackSuggestion, gen.SuggestDetails(ctx, "", "", nil))
	})
}

func TestGeminiGenerator_AutoConfigure(t *testing.T) {
	ctx := context.Background()

	respond := func(text string) *mockModel {
		return &mockModel{
			generateFunc: func(ctx context.Context, m string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse(text), nil
			},
		}
	}

	t.Run("フェンス付き JSON を解析し、スキーマを指定する", func(t *testing.T) {
		body := "```json\n" + `{
			"aesthetic": "` + string(catalog.StyleJapandi) + `",
			"atmosphere": ["` + string(catalog.BackgroundZenGarden) + `", "Unknown place", "` + string(catalog.BackgroundZenGarden) + `"],
			"lightEffect": "` + string(catalog.LightGoldenHour) + `",
			"collageTechnique": "` + string(catalog.CollageGoldLeaf) + `",
			"collageArtist": "` + string(catalog.ArtistHenriMatisse) + `",
			"compositionLayout": "` + string(catalog.LayoutMinimalCorner) + `",
			"keywords": " bonsai, tea, stone, moss, linen "
		}` + "\n```"
		model := respond(body)
		gen := newTestGenerator(t, model)

		cfg := gen.AutoConfigure(ctx, catalog.ThemeMindfulness)
		assert.Equal(t, domain.AutoConfig{
			Aesthetic:         catalog.StyleJapandi,
			Atmosphere:        []string{string(catalog.BackgroundZenGarden)},
			LightEffect:       catalog.LightGoldenHour,
			CollageTechnique:  catalog.CollageGoldLeaf,
			CollageArtist:     catalog.ArtistHenriMatisse,
			CompositionLayout: catalog.LayoutMinimalCorner,
			Keywords:          "bonsai, tea, stone, moss, linen",
		}, cfg)

		call := model.lastCall()
		assert.Equal(t, DefaultTextModel, call.model)
		require.NotNil(t, call.config)
		assert.Equal(t, "application/json", call.config.ResponseMIMEType)
		require.NotNil(t, call.config.ResponseSchema)
		assert.Contains(t, call.config.ResponseSchema.Properties, "compositionLayout")
	})

	t.Run("未知の列挙値は捨てる", func(t *testing.T) {
		gen := newTestGenerator(t, respond(`{"aesthetic":"Neon Gothic","lightEffect":"`+string(catalog.LightNeonHalo)+`"}`))
		cfg := gen.AutoConfigure(ctx, catalog.ThemeEnergy)
		assert.Empty(t, cfg.Aesthetic)
		assert.Equal(t, catalog.LightNeonHalo, cfg.LightEffect)
	})

	t.Run("JSON でない応答は空の結果", func(t *testing.T) {
		gen := newTestGenerator(t, respond("I think Japandi would be lovely!"))
		assert.True(t, gen.AutoConfigure(ctx, catalog.ThemeBalance).IsEmpty())
	})

	t.Run("通信エラーは空の結果", func(t *testing.T) {
		model := &mockModel{
			generateFunc: func(ctx context.Context, m string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, errors.New("503")
			},
		}
		gen := newTestGenerator(t, model)
		assert.True(t, gen.AutoConfigure(ctx, catalog.ThemeBalance).IsEmpty())
	})
}
