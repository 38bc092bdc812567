package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/shouni/vision-board-kit/pkg/domain"
)

var codeFencePattern = regexp.MustCompile("\\n?```(?:json|JSON)?\\n?")

// cleanJSON は Markdown のコードフェンスを取り除きます。
func cleanJSON(s string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(s, ""))
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// buildSuggestPrompt はキーワード提案用のプロンプトを生成します。
func buildSuggestPrompt(theme, style string, atmosphere []string) string {
	return fmt.Sprintf(`Context: A user is creating a vision board/poster.
Theme: %s
Style: %s
Atmosphere: %s

Task: Suggest 5 distinct, highly aesthetic, and specific visual objects or details that would perfectly fit this combination.
Return ONLY the 5 items separated by commas. Do not add any introductory text.
Example output: "vintage champagne glass, silk ribbon, white roses, pearl necklace, golden hour sunlight"
Keep it in English for better image generation accuracy.`,
		orDefault(theme, "General"),
		orDefault(style, "Aesthetic"),
		orDefault(strings.Join(atmosphere, ", "), "Neutral"),
	)
}

// buildAutoConfigPrompt は自動スタイル設定用のプロンプトを生成します。
func buildAutoConfigPrompt(theme catalog.Theme) string {
	join := func(values []string) string { return strings.Join(values, ", ") }
	return fmt.Sprintf(`Act as a professional Art Director.
Theme: "%s"

Task: Select the best possible matching settings for this theme from the provided ENUM lists.

Available Styles: %s
Available Atmosphere: %s
Available LightEffects: %s
Available CollageTechniques: %s
Available CollageArtists: %s
Available CompositionLayouts: %s

Return a valid JSON object with:
- aesthetic (string, must be one of the Styles)
- atmosphere (array of strings, pick 1-2 best matches from Atmosphere)
- lightEffect (string, pick 1 best match from LightEffects)
- collageTechnique (string, pick 1 best match from CollageTechniques)
- collageArtist (string, pick 1 best match from CollageArtists)
- compositionLayout (string, pick 1 best match from CompositionLayouts)
- keywords (string, 5 specific items separated by commas)`,
		theme,
		join(catalog.Strings(catalog.AllStyles)),
		join(catalog.Strings(catalog.AllBackgrounds)),
		join(catalog.Strings(catalog.AllLightEffects)),
		join(catalog.Strings(catalog.AllCollageTechniques)),
		join(catalog.Strings(catalog.AllCollageArtists)),
		join(catalog.Strings(catalog.AllCompositionLayouts)),
	)
}

const (
	removeAllInstruction = `TASK: REMOVE THE MAIN SUBJECT/PERSON AND ALL TEXT.
INSTRUCTIONS:
1. Identify the main person or character in the image.
2. Identify all text.
3. ERASE BOTH COMPLETELY.
4. INPAINT the empty areas with the existing background texture, scenery, or atmosphere.
5. The result should be a clean background (scenery/texture) without the person or text.`

	removeTextInstruction = `TASK: EDIT THIS IMAGE TO REMOVE TEXT BUT PRESERVE EVERYTHING ELSE.
INSTRUCTIONS:
1. Identify all text, typography, letters, and numbers.
2. ERASE ONLY THE LETTERS/CHARACTERS.
3. IMPORTANT: KEEP the main subject (person), lighting, style, colors, and composition EXACTLY the same.`

	editOutputLine = "OUTPUT: The edited image."
)

// buildRemovePrompt は編集モードに対応する指示を返します。
func buildRemovePrompt(mode domain.RemoveMode) (string, error) {
	switch mode {
	case domain.RemoveAll:
		return removeAllInstruction + "\n" + editOutputLine, nil
	case domain.RemoveTextOnly:
		return removeTextInstruction + "\n" + editOutputLine, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidRemoveMode, mode)
	}
}
