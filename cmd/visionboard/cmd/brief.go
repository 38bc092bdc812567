package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shouni/vision-board-kit/pkg/domain"
	"gopkg.in/yaml.v3"
)

// brief は CLI に渡す YAML のブリーフです。FormData の項目に加え、参照画像を
// ファイルパス・URL・data URI のいずれかで指定できます。
//
//	theme: "Travel & Adventure"
//	aesthetic: "Japandi"
//	atmosphere: ["Zen Garden", "misty morning"]
//	mainText: "BREATHE"
//	reference: ./me.jpg
type brief struct {
	domain.FormData `yaml:",inline"`

	Reference       string `yaml:"reference"`
	SecondReference string `yaml:"secondReference"`
}

// sourceLoader は参照画像の指定を DataURI に変換します。
type sourceLoader interface {
	Load(ctx context.Context, source string) (domain.DataURI, error)
}

// loadBrief はブリーフを読み込み、参照画像を解決して正規化済みの FormData を返します。
// path が "-" の場合は標準入力から読みます。
func loadBrief(ctx context.Context, path string, stdin io.Reader, loader sourceLoader) (domain.FormData, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.FormData{}, fmt.Errorf("ブリーフの読み込みに失敗しました: %w", err)
	}

	b := brief{FormData: domain.NewFormData()}
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return domain.FormData{}, fmt.Errorf("ブリーフの解析に失敗しました: %w", err)
	}

	form := b.FormData
	refs := []struct {
		slot   domain.ReferenceSlot
		source string
	}{
		{domain.PrimaryReference, b.Reference},
		{domain.SecondaryReference, b.SecondReference},
	}
	for _, ref := range refs {
		if ref.source == "" {
			continue
		}
		img, err := loader.Load(ctx, ref.source)
		if err != nil {
			return domain.FormData{}, fmt.Errorf("参照画像 (%s) の読み込みに失敗しました: %w", ref.slot, err)
		}
		if err := form.SetReference(ref.slot, img); err != nil {
			return domain.FormData{}, err
		}
	}

	form.Normalize()
	if err := form.Validate(); err != nil {
		return domain.FormData{}, fmt.Errorf("ブリーフが不正です: %w", err)
	}
	return form, nil
}
