package generator

import (
	"errors"
	"fmt"

	"github.com/shouni/vision-board-kit/pkg/domain"
)

const (
	// DefaultImageModel は画像生成・編集に使うモデルです。
	DefaultImageModel = "gemini-2.5-flash-image"
	// DefaultTextModel は提案・自動設定に使うモデルです。
	DefaultTextModel = "gemini-2.5-flash"

	// FallbackSuggestion は提案の取得に失敗したときのキーワードです。
	FallbackSuggestion = "flowers, sunlight, art, luxury, dreams"

	responseMimeJSON = "application/json"
	defaultImageMime = "image/png"
)

// ErrNoImageInResponse は応答は返ったが画像パーツが含まれていなかったことを示します。
var ErrNoImageInResponse = errors.New("no image in response")

// ImageOutput は Core の内部解析結果
type ImageOutput struct {
	Data     []byte
	MimeType string
}

// GenerationError は画像生成の失敗です。Prompt は送信したプロンプトです。
type GenerationError struct {
	Prompt string
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("Gemini画像生成エラー: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// EditError は画像編集（テキストや被写体の除去）の失敗です。
type EditError struct {
	Mode domain.RemoveMode
	Err  error
}

func (e *EditError) Error() string {
	return fmt.Sprintf("Gemini画像編集エラー (mode: %s): %v", e.Mode, e.Err)
}

func (e *EditError) Unwrap() error { return e.Err }
