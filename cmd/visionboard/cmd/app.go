package cmd

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/vision-board-kit/internal/config"
	"github.com/shouni/vision-board-kit/pkg/asset"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/generator"
	"google.golang.org/genai"
)

// newGenerator は Gemini クライアントを作成し、生成器を組み立てます。
func newGenerator(ctx context.Context, cfg config.Config) (*generator.GeminiGenerator, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini クライアントの作成に失敗しました: %w", err)
	}

	core, err := generator.NewGeminiImageCore(client.Models, cfg.Compression)
	if err != nil {
		return nil, err
	}
	return generator.NewGeminiGenerator(core, client.Models, cfg.ImageModel, cfg.TextModel)
}

// newLoader は参照画像の読み込み器を作成します。CLI ではローカルファイルも許可します。
func newLoader(cfg config.Config, allowFiles bool) *asset.Loader {
	var httpClient httpkit.ClientInterface = httpkit.New(cfg.FetchTimeout)
	opts := []asset.Option{
		asset.WithCache(cache.New(cfg.CacheTTL, 2*cfg.CacheTTL), cfg.CacheTTL),
	}
	if allowFiles {
		opts = append(opts, asset.WithLocalFiles())
	}
	return asset.NewLoader(httpClient, opts...)
}

// writeImage は data URI の画像をファイルに書き出します。
// path が空なら base に MIME に応じた拡張子を付けたパスを使います。
func writeImage(img domain.DataURI, path, base string) (string, error) {
	mimeType, data, err := img.Decode()
	if err != nil {
		return "", err
	}
	if path == "" {
		path = base + extensionFor(mimeType)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("画像の書き込みに失敗しました: %w", err)
	}
	return path, nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".png"
}

// splitList はカンマ区切りの値を空要素なしで分割します。
func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
