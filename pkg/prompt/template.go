package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/vision-board-kit/pkg/catalog"
)

const (
	// FallbackTheme はテーマ未選択時に使うテーマです。
	FallbackTheme = "Aesthetic Art & Inspiration"
	// FallbackAesthetic はスタイル未選択時に使うスタイルです。
	FallbackAesthetic = "Modern Minimalist Luxury"
	// FallbackAtmosphere は雰囲気が 1 つもない場合の背景です。
	FallbackAtmosphere = "Neutral, clean studio background"

	atmosphereSeparator = ", "

	// RoleHeader はアートディレクターとしての役割とタスクを定義します。
	RoleHeader = `ROLE: You are a world-class Visionary Art Director and Graphic Designer for a luxury lifestyle magazine (like Vogue, Kinfolk, or Dazed).
TASK: Create a breathtaking, trendy DIGITAL ART POSTER or VISION BOARD.`

	// NoTextSection は文字を一切描かせないための指示です。
	NoTextSection = `2. TYPOGRAPHY:
- DO NOT INCLUDE ANY TEXT, WORDS, OR LETTERS.
- Create a purely visual art piece.`

	// CreativeDirection は色・品質・ムードの共通指示です。
	CreativeDirection = `4. CREATIVE DIRECTION:
- Color Palette: Harmonious, sophisticated, premium color grading.
- Quality: 8k resolution, highly detailed, sharp focus, award-winning composition.
- Mood: Soulful, inspiring, magnetic, and aesthetic.`

	// SeamlessPhotography はコラージュなしの場合の技法指示です。
	SeamlessPhotography = `ARTISTIC TECHNIQUE: HIGH-END CINEMATIC PHOTOGRAPHY or HYPER-REALISTIC 3D ART.
  - INSTRUCTION: Do NOT create a collage. Create a seamless, single-scene composition with depth of field, realistic lighting, and consistent texture.
  - VIBE: Editorial fashion shot or luxury lifestyle photography.`

	// CinematicLighting は光演出なしの場合の照明指示です。
	CinematicLighting = "LIGHTING: Cinematic, volumetric, or studio lighting matching the atmosphere."

	// DualReferenceInstruction は参照画像 2 枚のときの指示です。
	DualReferenceInstruction = `REFERENCE IMAGES INSTRUCTION:
- You are provided with TWO reference images.
- IMAGE 1 (First Input): This is the MAIN SUBJECT and STYLE REFERENCE (color grading, lighting).
- IMAGE 2 (Second Input): This is the SECOND SUBJECT.
- GOAL: Create a composition where BOTH subjects (or their artistic representations) interact harmoniously.
- The style should be cohesive, blending both figures into the scene described above.`

	singleReferenceTemplate = `REFERENCE IMAGE INSTRUCTION:
- Use the provided image as the VISUAL ANCHOR (Main Subject).
- Preserve the key features/likeness of the subject.
- RE-IMAGINE the surroundings and styling to match the "%s" aesthetic perfectly.
- Apply the requested collage or photographic effects to this subject.`

	noReferenceTemplate = `NO REFERENCE IMAGE PROVIDED:
- Generate a completely original masterpiece from scratch.
- Create a stunning, imaginary subject or scene that perfectly embodies the "%s" theme.`
)

// techniqueDetails は個別の説明を持つコラージュ技法です。それ以外は汎用の説明のみです。
var techniqueDetails = map[catalog.CollageTechnique]string{
	catalog.CollagePaintOverlay:   "Use bold ACRYLIC BRUSH STROKES or OIL PAINT textures painted DIRECTLY OVER the photograph. The strokes should be expressive, artistic, and partially cover or frame the subject.",
	catalog.CollageGoldLeaf:       "Apply GOLD LEAF (Kintsugi style) textures, golden cracks, and metallic foil overlays on top of the image. The gold should look realistic and reflective.",
	catalog.CollageOutlineDrawing: "Add HAND-DRAWN WHITE OUTLINES, doodles, and sketches over the photo. The style should be like a fashion illustration or diary sketch overlay.",
}

// TypographyLine はテキスト欄 1 つ分の役割ラベルと本文です。
type TypographyLine struct {
	Label string
	Value string
}

// BuildConceptSection はテーマの節を生成します。
func BuildConceptSection(theme string) string {
	return fmt.Sprintf("1. CORE CONCEPT & THEME: %s\n- Interpret this theme with deep symbolism, emotional resonance, and high vibration.", theme)
}

// BuildTypographySection は文字組みの節を生成します。lines が空なら NoTextSection です。
func BuildTypographySection(layout catalog.CompositionLayout, lines []TypographyLine) string {
	if len(lines) == 0 {
		return NoTextSection
	}

	var sb strings.Builder
	sb.WriteString("2. TYPOGRAPHY (STRICT REQUIREMENT):\n")
	sb.WriteString("- YOU MUST RENDER THE FOLLOWING TEXT EXACTLY AS WRITTEN.\n")
	sb.WriteString("- The text must be legible, stylish, and integrated into the artwork (not just floating on top).\n")
	sb.WriteString(fmt.Sprintf("- TEXT COMPOSITION LAYOUT: %s.\n", layout))
	sb.WriteString("  Make the typography part of the art. Do not just place it randomly.\n")
	sb.WriteString("  Follow the rules of this layout style strictly.\n\n")
	sb.WriteString("TEXT LAYOUT:\n")
	for _, l := range lines {
		sb.WriteString(fmt.Sprintf("- %s: \"%s\"\n", l.Label, l.Value))
	}
	sb.WriteString("\n- Font Style: Expensive Serif or Clean Sans-Serif. Use mixed typography for high-end magazine look.")
	return sb.String()
}

// BuildTechniqueInstruction はコラージュ技法（またはコラージュなし）の指示を生成します。
func BuildTechniqueInstruction(technique catalog.CollageTechnique, artist catalog.CollageArtist) string {
	if !technique.IsCollage() {
		return SeamlessPhotography
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ARTISTIC TECHNIQUE: SOPHISTICATED COLLAGE & MIXED MEDIA (%s).\n", technique))
	sb.WriteString("  - INSTRUCTION: Create a high-fashion collage. Use layering, texture blending, ripped paper edges, tape overlays, or digital glitch effects as specified by the technique.\n")
	if details, ok := techniqueDetails[technique]; ok {
		sb.WriteString("  - SPECIFIC DETAILS: " + details + "\n")
	}
	if artist != "" && artist != catalog.ArtistNone {
		sb.WriteString(fmt.Sprintf("  - ARTIST STYLE REFERENCE: Channel the visual style of %s. Copy their signature composition, color grading, and texture usage.\n", artist))
	}
	sb.WriteString(`  - COMPOSITION: Abstract yet balanced. Combine elements artistically, avoiding a simple "cut and paste" look. Aim for a gallery-quality contemporary art piece.`)
	return sb.String()
}

// BuildLightInstruction は光演出の指示を生成します。
func BuildLightInstruction(effect catalog.LightEffect) string {
	if effect == "" || effect == catalog.LightNoEffect {
		return CinematicLighting
	}
	return fmt.Sprintf("LIGHTING & FX OVERLAY (CRITICAL): Apply the \"%s\" effect prominently.\n  Ensure the lighting enhances the mood and blends organically with the composition.", effect)
}

// BuildReferenceInstruction は参照画像の枚数に応じた指示を生成します。
func BuildReferenceInstruction(count int, theme, aesthetic string) string {
	switch {
	case count >= 2:
		return DualReferenceInstruction
	case count == 1:
		return fmt.Sprintf(singleReferenceTemplate, aesthetic)
	default:
		return fmt.Sprintf(noReferenceTemplate, theme)
	}
}
