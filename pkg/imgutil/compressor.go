package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	// DefaultQuality は JPEG 再圧縮の既定品質です。
	DefaultQuality = 75
	// DefaultThreshold はこれを超えるサイズの画像だけを再圧縮する既定値（バイト）です。
	DefaultThreshold = 1 << 20

	jpegMimeType = "image/jpeg"
)

// Options は再圧縮の設定です。ゼロ値は圧縮しません。
type Options struct {
	Enabled   bool
	Quality   int
	Threshold int
}

// DefaultOptions は既定値で圧縮を有効にした Options を返します。
func DefaultOptions() Options {
	return Options{Enabled: true, Quality: DefaultQuality, Threshold: DefaultThreshold}
}

// CompressToJPEG は画像データ（PNG, GIF, JPEG, WebP）をJPEG形式に圧縮します。
// image.Decodeがサポートするフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Shrink は設定に従って大きな画像を JPEG に再圧縮します。
// 圧縮しない場合や失敗した場合、または小さくならない場合は元のデータと MIME をそのまま返します。
func Shrink(data []byte, mimeType string, opts Options) ([]byte, string) {
	if !opts.Enabled || len(data) <= opts.Threshold {
		return data, mimeType
	}
	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	compressed, err := CompressToJPEG(data, quality)
	if err != nil || len(compressed) >= len(data) {
		return data, mimeType
	}
	return compressed, jpegMimeType
}
