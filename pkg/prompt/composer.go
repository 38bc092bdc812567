// Package prompt はフォームの内容から画像生成用のプロンプトと添付画像を組み立てます。
package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/shouni/vision-board-kit/pkg/domain"
)

// Composition は 1 回の生成リクエストに必要な材料です。
// AspectRatio は本文には埋め込まず、API パラメータとして渡します。
type Composition struct {
	Text        string
	Attachments []domain.Attachment
	AspectRatio catalog.AspectRatio
}

// Compose はフォームからプロンプトを組み立てます。同じ入力には常に同じ結果を返します。
// 参照画像の data URI が壊れている場合のみエラーになります。
func Compose(form domain.FormData) (Composition, error) {
	attachments, err := decodeReferences(form)
	if err != nil {
		return Composition{}, err
	}

	aspect := form.AspectRatio
	if !aspect.Valid() {
		aspect = catalog.AspectPortrait
	}

	return Composition{
		Text:        BuildText(form, len(attachments)),
		Attachments: attachments,
		AspectRatio: aspect,
	}, nil
}

// BuildText はプロンプト本文のみを生成します。refCount は添付する参照画像の枚数です。
func BuildText(form domain.FormData, refCount int) string {
	theme := orDefault(string(form.Theme), FallbackTheme)
	aesthetic := orDefault(string(form.Aesthetic), FallbackAesthetic)
	atmosphere := FallbackAtmosphere
	if len(form.Atmosphere) > 0 {
		atmosphere = strings.Join(form.Atmosphere, atmosphereSeparator)
	}

	visual := fmt.Sprintf(`3. VISUAL ELEMENTS:
- Key Objects/Details: %s
- Aesthetic Style: %s
- Atmosphere/Background Mix: %s
- %s
- %s`,
		form.Keywords,
		aesthetic,
		atmosphere,
		BuildTechniqueInstruction(form.CollageTechnique, form.CollageArtist),
		BuildLightInstruction(form.LightEffect),
	)

	sections := []string{
		RoleHeader,
		BuildConceptSection(theme),
		BuildTypographySection(form.CompositionLayout, typographyLines(form)),
		visual,
		CreativeDirection,
		BuildReferenceInstruction(refCount, theme, aesthetic),
	}
	return strings.Join(sections, "\n\n")
}

// typographyLines は空でないテキスト欄を表示順に並べます。
// タグラインは下部キャプションがない場合のみ使います。
func typographyLines(form domain.FormData) []TypographyLine {
	candidates := []TypographyLine{
		{"TOP CAPTION (Small, centered at very top)", form.TextTop},
		{"MAIN HEADLINE 1 (Large, Prominent, Elegant Serif/Display)", form.MainText},
		{"HEADLINE 2 (Medium, Artistic/Script or Contrast Font)", form.SecondaryText},
		{"SUBTITLE (Clean Sans-Serif, smaller)", form.SubText},
		{"BOTTOM CAPTION (Minimalist, footer/date)", form.TextBottom},
	}
	if isBlank(form.TextBottom) {
		candidates = append(candidates, TypographyLine{"TAGLINE", form.Tagline})
	}

	lines := make([]TypographyLine, 0, len(candidates))
	for _, c := range candidates {
		if isBlank(c.Value) {
			continue
		}
		lines = append(lines, c)
	}
	return lines
}

func decodeReferences(form domain.FormData) ([]domain.Attachment, error) {
	attachments := make([]domain.Attachment, 0, 2)
	for _, ref := range []domain.DataURI{form.ReferenceImage, form.SecondReferenceImage} {
		if ref.IsZero() {
			continue
		}
		mimeType, data, err := ref.Decode()
		if err != nil {
			return nil, fmt.Errorf("参照画像の読み込みに失敗しました: %w", err)
		}
		attachments = append(attachments, domain.Attachment{MimeType: mimeType, Data: data})
	}
	return attachments, nil
}

func orDefault(s, fallback string) string {
	if isBlank(s) {
		return fallback
	}
	return s
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
