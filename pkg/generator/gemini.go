package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/prompt"
	"google.golang.org/genai"
)

// GeminiGenerator は、ポスター生成・画像編集と、テキストモデルによる入力補助を担当する統合ジェネレーターです。
type GeminiGenerator struct {
	imgCore    ImageExecutor
	aiClient   GenerativeModel
	imageModel string
	textModel  string
}

// NewGeminiGenerator は GeminiGenerator を初期化します。モデル名が空なら既定値を使います。
func NewGeminiGenerator(
	core ImageExecutor,
	aiClient GenerativeModel,
	imageModel string,
	textModel string,
) (*GeminiGenerator, error) {
	if core == nil {
		return nil, fmt.Errorf("core (ImageExecutor) is required")
	}
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (GenerativeModel) is required")
	}
	if imageModel == "" {
		imageModel = DefaultImageModel
	}
	if textModel == "" {
		textModel = DefaultTextModel
	}

	return &GeminiGenerator{
		imgCore:    core,
		aiClient:   aiClient,
		imageModel: imageModel,
		textModel:  textModel,
	}, nil
}

// Generate は組み立て済みのプロンプトと参照画像からポスターを 1 枚生成します。
// 返す Prompt は実際に送信した本文です。
func (g *GeminiGenerator) Generate(ctx context.Context, comp prompt.Composition) (*domain.GenerationResult, error) {
	slog.InfoContext(ctx, "Geminiポスター生成リクエスト準備中",
		"model", g.imageModel,
		"ref_count", len(comp.Attachments),
		"aspect_ratio", comp.AspectRatio,
	)

	parts := []*genai.Part{genai.NewPartFromText(comp.Text)}
	for _, att := range comp.Attachments {
		if p := g.imgCore.PreparePart(att); p != nil {
			parts = append(parts, p)
		}
	}

	out, err := g.imgCore.ExecuteRequest(ctx, g.imageModel, parts, string(comp.AspectRatio))
	if err != nil {
		return nil, &GenerationError{Prompt: comp.Text, Err: err}
	}

	return &domain.GenerationResult{
		Image:  domain.NewDataURI(out.MimeType, out.Data),
		Prompt: comp.Text,
	}, nil
}

// RemoveContent は画像からテキスト、またはテキストと主被写体を取り除いた画像を返します。
func (g *GeminiGenerator) RemoveContent(ctx context.Context, image domain.DataURI, mode domain.RemoveMode) (domain.DataURI, error) {
	instruction, err := buildRemovePrompt(mode)
	if err != nil {
		return "", &EditError{Mode: mode, Err: err}
	}

	mimeType, data, err := image.Decode()
	if err != nil {
		return "", &EditError{Mode: mode, Err: err}
	}

	slog.InfoContext(ctx, "Gemini画像編集リクエスト", "model", g.imageModel, "mode", mode)

	// 画像を先、指示を後に送る
	parts := []*genai.Part{
		g.imgCore.PreparePart(domain.Attachment{MimeType: mimeType, Data: data}),
		genai.NewPartFromText(instruction),
	}
	if parts[0] == nil {
		return "", &EditError{Mode: mode, Err: fmt.Errorf("%w: empty image", domain.ErrInvalidDataURI)}
	}

	out, err := g.imgCore.ExecuteRequest(ctx, g.imageModel, parts, "")
	if err != nil {
		return "", &EditError{Mode: mode, Err: err}
	}
	return domain.NewDataURI(out.MimeType, out.Data), nil
}

// SuggestDetails はテーマ・スタイル・雰囲気に合うオブジェクトを 5 つ、カンマ区切りで提案します。
// 失敗時は FallbackSuggestion を返します。
func (g *GeminiGenerator) SuggestDetails(ctx context.Context, theme, style string, atmosphere []string) string {
	text, err := g.generateText(ctx, buildSuggestPrompt(theme, style, atmosphere), nil)
	if err != nil {
		slog.WarnContext(ctx, "キーワード提案に失敗したため既定値を使用します", "error", err)
		return FallbackSuggestion
	}
	if text == "" {
		slog.WarnContext(ctx, "キーワード提案が空だったため既定値を使用します")
		return FallbackSuggestion
	}
	return strings.Trim(text, "\"")
}

// AutoConfigure はテーマに合う設定を列挙値の中から選ばせます。
// 失敗時は空の AutoConfig を返します。未知の値は捨てます。
func (g *GeminiGenerator) AutoConfigure(ctx context.Context, theme catalog.Theme) domain.AutoConfig {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: responseMimeJSON,
		ResponseSchema:   autoConfigSchema(),
	}
	text, err := g.generateText(ctx, buildAutoConfigPrompt(theme), config)
	if err != nil {
		slog.WarnContext(ctx, "自動設定の取得に失敗しました", "theme", theme, "error", err)
		return domain.AutoConfig{}
	}

	cfg, err := parseAutoConfig(text)
	if err != nil {
		slog.WarnContext(ctx, "自動設定の解析に失敗しました", "theme", theme, "error", err)
		return domain.AutoConfig{}
	}
	return cfg
}

func (g *GeminiGenerator) generateText(ctx context.Context, text string, config *genai.GenerateContentConfig) (string, error) {
	resp, err := g.aiClient.GenerateContent(ctx, g.textModel, genai.Text(text), config)
	if err != nil {
		return "", err
	}
	return responseText(resp), nil
}

// autoConfigResponse はモデルが返す JSON の形です。
type autoConfigResponse struct {
	Aesthetic         string   `json:"aesthetic"`
	Atmosphere        []string `json:"atmosphere"`
	LightEffect       string   `json:"lightEffect"`
	CollageTechnique  string   `json:"collageTechnique"`
	CollageArtist     string   `json:"collageArtist"`
	CompositionLayout string   `json:"compositionLayout"`
	Keywords          string   `json:"keywords"`
}

// parseAutoConfig はコードフェンスを除いて JSON を読み、既知の値だけを残します。
func parseAutoConfig(text string) (domain.AutoConfig, error) {
	cleaned := cleanJSON(text)
	if cleaned == "" {
		return domain.AutoConfig{}, fmt.Errorf("empty response")
	}

	var raw autoConfigResponse
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return domain.AutoConfig{}, fmt.Errorf("JSONデコード失敗: %w", err)
	}

	var cfg domain.AutoConfig
	if v := catalog.Style(raw.Aesthetic); v.Valid() {
		cfg.Aesthetic = v
	}
	if v := catalog.LightEffect(raw.LightEffect); v.Valid() {
		cfg.LightEffect = v
	}
	if v := catalog.CollageTechnique(raw.CollageTechnique); v.Valid() {
		cfg.CollageTechnique = v
	}
	if v := catalog.CollageArtist(raw.CollageArtist); v.Valid() {
		cfg.CollageArtist = v
	}
	if v := catalog.CompositionLayout(raw.CompositionLayout); v.Valid() {
		cfg.CompositionLayout = v
	}
	for _, a := range raw.Atmosphere {
		if catalog.Background(a).Valid() && !slices.Contains(cfg.Atmosphere, a) {
			cfg.Atmosphere = append(cfg.Atmosphere, a)
		}
	}
	cfg.Keywords = strings.TrimSpace(raw.Keywords)
	return cfg, nil
}

// autoConfigSchema は自動設定の応答スキーマです。各項目を列挙値に制限します。
func autoConfigSchema() *genai.Schema {
	enum := func(values []string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Enum: values}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"aesthetic": enum(catalog.Strings(catalog.AllStyles)),
			"atmosphere": {
				Type:  genai.TypeArray,
				Items: enum(catalog.Strings(catalog.AllBackgrounds)),
			},
			"lightEffect":       enum(catalog.Strings(catalog.AllLightEffects)),
			"collageTechnique":  enum(catalog.Strings(catalog.AllCollageTechniques)),
			"collageArtist":     enum(catalog.Strings(catalog.AllCollageArtists)),
			"compositionLayout": enum(catalog.Strings(catalog.AllCompositionLayouts)),
			"keywords":          {Type: genai.TypeString},
		},
	}
}
