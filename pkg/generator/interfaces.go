package generator

import (
	"context"

	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/prompt"
	"google.golang.org/genai"
)

// GenerativeModel は Gemini のコンテンツ生成 API です。
// *genai.Models（client.Models）がそのまま満たします。
type GenerativeModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ImageExecutor は、画像生成リクエストを処理し、画像関連データを準備するためのメソッドを定義するインターフェースです。
type ImageExecutor interface {
	// ExecuteRequest は、指定されたパーツで画像生成リクエストを実行し、最初の画像を返します。
	ExecuteRequest(ctx context.Context, model string, parts []*genai.Part, aspectRatio string) (*ImageOutput, error)
	// PreparePart は、添付画像を送信用のパーツに変換します。
	PreparePart(att domain.Attachment) *genai.Part
}

// ImageGenerator はビジネスロジック層が利用する画像系の窓口です。
type ImageGenerator interface {
	Generate(ctx context.Context, comp prompt.Composition) (*domain.GenerationResult, error)
	RemoveContent(ctx context.Context, image domain.DataURI, mode domain.RemoveMode) (domain.DataURI, error)
}

// Assistant はフォーム入力を補助するベストエフォートの操作です。失敗してもエラーを返しません。
type Assistant interface {
	SuggestDetails(ctx context.Context, theme, style string, atmosphere []string) string
	AutoConfigure(ctx context.Context, theme catalog.Theme) domain.AutoConfig
}

var (
	_ GenerativeModel = (*genai.Models)(nil)
	_ ImageExecutor   = (*GeminiImageCore)(nil)
	_ ImageGenerator  = (*GeminiGenerator)(nil)
	_ Assistant       = (*GeminiGenerator)(nil)
)
