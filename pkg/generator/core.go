package generator

import (
	"context"
	"fmt"

	"github.com/shouni/vision-board-kit/pkg/imgutil"
	"google.golang.org/genai"
)

// imageModalities は画像モデルに要求する出力形式です。
var imageModalities = []string{"IMAGE", "TEXT"}

// GeminiImageCore は画像リクエストの実行と添付画像の準備を担う基盤クラスです。
type GeminiImageCore struct {
	aiClient    GenerativeModel
	compression imgutil.Options
}

// NewGeminiImageCore は依存関係を注入して GeminiImageCore を初期化します。
func NewGeminiImageCore(aiClient GenerativeModel, compression imgutil.Options) (*GeminiImageCore, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	return &GeminiImageCore{
		aiClient:    aiClient,
		compression: compression,
	}, nil
}

// ExecuteRequest はパーツを 1 つのユーザーコンテンツとして送り、最初の画像を取り出します。
// aspectRatio が空の場合は ImageConfig を付けません。
func (c *GeminiImageCore) ExecuteRequest(ctx context.Context, model string, parts []*genai.Part, aspectRatio string) (*ImageOutput, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: imageModalities,
	}
	if aspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: aspectRatio}
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := c.aiClient.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, err
	}
	return c.parseToResponse(resp)
}
