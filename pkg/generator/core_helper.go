package generator

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/imgutil"
	"google.golang.org/genai"
)

// PreparePart は添付画像をインラインデータのパーツに変換します。
// 圧縮が有効で閾値を超える場合は JPEG に再圧縮します。
func (c *GeminiImageCore) PreparePart(att domain.Attachment) *genai.Part {
	if len(att.Data) == 0 {
		return nil
	}
	mimeType := att.MimeType
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(att.Data)
	}
	data, mimeType := imgutil.Shrink(att.Data, mimeType, c.compression)
	return genai.NewPartFromBytes(data, mimeType)
}

// parseToResponse は Gemini のレスポンスから最初の画像パーツを取り出します。
func (c *GeminiImageCore) parseToResponse(resp *genai.GenerateContentResponse) (*ImageOutput, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return nil, fmt.Errorf("%w: プロンプトがブロックされました (BlockReason: %s)", ErrNoImageInResponse, resp.PromptFeedback.BlockReason)
		}
		return nil, fmt.Errorf("%w: Geminiからの有効な応答がありませんでした", ErrNoImageInResponse)
	}

	// 最初の候補 (Candidate) のみを利用する。
	candidate := resp.Candidates[0]

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = defaultImageMime
				}
				return &ImageOutput{Data: part.InlineData.Data, MimeType: mimeType}, nil
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("%w: 画像生成が異常終了しました (FinishReason: %s)", ErrNoImageInResponse, candidate.FinishReason)
	}
	return nil, fmt.Errorf("%w: 画像データが見つかりませんでした", ErrNoImageInResponse)
}

// responseText は最初の候補のテキストパーツを連結して返します。思考パーツは除きます。
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String())
}
