// Package catalog はビジョンボードの選択肢（テーマ、スタイル、背景など）の列挙値を保持します。
// 値はそのままプロンプトに埋め込まれるため、英語表記を正とします。
package catalog

import "slices"

// Theme はポスターの中心テーマです。
type Theme string

const (
	ThemeSelfLove        Theme = "Self-Love & Self-Worth"
	ThemeAbundance       Theme = "Financial Abundance & Luxury"
	ThemeTravel          Theme = "Travel & Freedom"
	ThemeCareer          Theme = "Career & Personal Brand"
	ThemeRelationships   Theme = "Relationships & Love"
	ThemeHealth          Theme = "Health & Body (Wellness)"
	ThemeCreativity      Theme = "Creativity & Flow"
	ThemeNewEra          Theme = "New Era (Manifestation)"
	ThemeBalance         Theme = "Balance & Calm"
	ThemeEnergy          Theme = "Energy & Resource"
	ThemeConfidence      Theme = "Confidence & Strength"
	ThemeDreams          Theme = "Dreams & Visualization"
	ThemeDarkFeminine    Theme = "Dark Feminine Energy (Magnetism)"
	ThemeLightFeminine   Theme = "Light Feminine Energy (Tenderness, Care)"
	ThemeHighPriestess   Theme = "High Priestess (Intuition, Magic, Tarot)"
	ThemeQuantumLeap     Theme = "Quantum Leap"
	ThemeBossEnergy      Theme = "Boss Energy (Leadership, Power)"
	ThemeMotherhood      Theme = "Motherhood (Creation)"
	ThemeMindfulness     Theme = "Mindfulness (Zen)"
	ThemeLuxuryLifestyle Theme = "Luxury Lifestyle (Hedonism, Comfort)"
)

// AllThemes は表示順のテーマ一覧です。
var AllThemes = []Theme{
	ThemeSelfLove, ThemeAbundance, ThemeTravel, ThemeCareer, ThemeRelationships,
	ThemeHealth, ThemeCreativity, ThemeNewEra, ThemeBalance, ThemeEnergy,
	ThemeConfidence, ThemeDreams, ThemeDarkFeminine, ThemeLightFeminine,
	ThemeHighPriestess, ThemeQuantumLeap, ThemeBossEnergy, ThemeMotherhood,
	ThemeMindfulness, ThemeLuxuryLifestyle,
}

// Valid は値が列挙に含まれるかを返します。
func (t Theme) Valid() bool { return slices.Contains(AllThemes, t) }

// Style はポスターの美的スタイルです。
type Style string

const (
	StyleOldMoney          Style = "Old Money (Luxury, minimalism, beige)"
	StyleVogueEditorial    Style = "Vogue Editorial (Gloss, fashion poses, contrast)"
	StyleRoyalCore         Style = "Royal Core (Gold, baroque, palaces)"
	StyleStreetLuxe        Style = "Street Luxe (Streetwear, graffiti, concrete, high fashion)"
	StyleHighTech          Style = "High-Tech Future (Glass, metal, holograms, purity)"
	StyleArtDeco           Style = "Art Deco (Geometry, gold, the 20s, jazz)"
	StyleTrueMinimalism    Style = "True Minimalism (Purity, emptiness, air)"
	StyleJapandi           Style = "Japandi (Japan + Scandinavia, wood, stone)"
	StyleOrganicMinimalism Style = "Organic Minimalism (Organic shapes, nature)"
	StyleSoftMinimalism    Style = "Soft Minimalism (Warm tones, comfort, soft light)"
	StyleMonochromeMinimal Style = "Monochrome Minimal (One color, textures)"
	StyleScandinavian      Style = "Scandinavian (Light wood, simplicity, comfort)"
	StyleWabiSabi          Style = "Wabi-Sabi (Imperfection, earthy tones, texture)"
	StyleMinimalistLines   Style = "Minimalist Line Art (Lines, abstraction, purity)"
	StyleBauhaus           Style = "Bauhaus (Geometry, function, primary colors)"
	StyleSurrealMinimalism Style = "Surreal Minimalism (Floating objects, desert, purity)"
	StyleClassicOil        Style = "Classic Oil Painting (Brush strokes, canvas, classic)"
	StyleWatercolorDream   Style = "Watercolor Dream (Watercolor, drips, lightness)"
	StyleSpiritualArt      Style = "Spiritual Art (Aura, crystals, cosmos, gradients)"
	StyleEthereal          Style = "Ethereal (Fairytale, haze, angels)"
	StyleRetroFilm         Style = "Retro Film (90s film, grain, warm light)"
	StyleDarkAcademia      Style = "Dark Academia (Library, tweed, autumn, mysteries)"
	StyleNeoNoir           Style = "Neo-Noir (Contrast, shadows, neon, rain)"
	StyleVaporwave         Style = "Vaporwave (80s, palms, gradients, statues)"
	StyleGrunge90s         Style = "90s Grunge (Scuffs, plaid, carelessness)"
	StyleBohoChic          Style = "Boho Chic (Bali, nature, freedom)"
	StyleCyberFairy        Style = "Cyber Fairy (Y2K, neon, digital art)"
	StyleBarbieCore        Style = "Barbie Core (Hot pink, glamour, plastic)"
	StyleCottageCore       Style = "Cottage Core (Wildflowers, picnic, comfort, summer)"
	StyleSoftDream         Style = "Soft Dream (Pastel, clouds, tenderness)"
)

// AllStyles は表示順のスタイル一覧です。
var AllStyles = []Style{
	StyleOldMoney, StyleVogueEditorial, StyleRoyalCore, StyleStreetLuxe, StyleHighTech, StyleArtDeco,
	StyleTrueMinimalism, StyleJapandi, StyleOrganicMinimalism, StyleSoftMinimalism, StyleMonochromeMinimal,
	StyleScandinavian, StyleWabiSabi, StyleMinimalistLines, StyleBauhaus, StyleSurrealMinimalism,
	StyleClassicOil, StyleWatercolorDream, StyleSpiritualArt, StyleEthereal,
	StyleRetroFilm, StyleDarkAcademia, StyleNeoNoir, StyleVaporwave, StyleGrunge90s,
	StyleBohoChic, StyleCyberFairy, StyleBarbieCore, StyleCottageCore, StyleSoftDream,
}

// Valid は値が列挙に含まれるかを返します。
func (s Style) Valid() bool { return slices.Contains(AllStyles, s) }

// Background は背景・雰囲気の選択肢です。Atmosphere には自由入力も混在します。
type Background string

const (
	BackgroundLuxuryVilla        Background = "Luxury Villa (Interiors, marble, pool)"
	BackgroundNatureRetreat      Background = "Nature Retreat (Forest, mountains, lake)"
	BackgroundCityLights         Background = "City Lights (Skyscrapers, lights, motion)"
	BackgroundArtStudio          Background = "Art Studio (Canvases, paints, creative mess)"
	BackgroundCozyHome           Background = "Cozy Home (Fireplace, books, blanket)"
	BackgroundBeachClub          Background = "Beach Club (Sea, sand, sunset)"
	BackgroundParisCafe          Background = "Paris Cafe (Street cafe, flowers, architecture)"
	BackgroundDesertDunes        Background = "Desert Dunes (Desert, sunset, sand)"
	BackgroundBotanicalGarden    Background = "Botanical Garden (Greenhouse, greenery, glass)"
	BackgroundPrivateJet         Background = "Private Jet (Leather cabin, porthole, sky)"
	BackgroundYachtLife          Background = "Yacht Life (Ocean, deck, white)"
	BackgroundAncientLibrary     Background = "Ancient Library (Bookshelves, dust, scrolls)"
	BackgroundFashionRunway      Background = "Fashion Runway (Catwalk, spotlights, flashes)"
	BackgroundInfinityPool       Background = "Infinity Pool (Edgeless pool, horizon)"
	BackgroundNeonTokyo          Background = "Neon Tokyo (Cyberpunk city, rain, signs)"
	BackgroundRoofParty          Background = "Roof Party (Skyscraper roof, party, night)"
	BackgroundUnderwaterWorld    Background = "Underwater World (Reefs, light rays, bubbles)"
	BackgroundMarsColony         Background = "Mars Colony (Red sand, futurism, domes)"
	BackgroundCrystalCave        Background = "Crystal Cave (Crystals, glow, cave)"
	BackgroundVintageCar         Background = "Vintage Car Interior (Leather, steering wheel, retro dashboard)"
	BackgroundOperaHouse         Background = "Opera House (Theatre, velvet, box, chandelier)"
	BackgroundSnowyPeak          Background = "Snowy Peak (Mountains, snow, clear sky, sun)"
	BackgroundAmalfiCoast        Background = "Amalfi Coast (Italy, lemons, sea, cliffs)"
	BackgroundNYCLoft            Background = "NYC Loft (Brick, big windows, industrial chic)"
	BackgroundZenGarden          Background = "Zen Garden (Bonsai, stones, sand, harmony)"
	BackgroundCyberBunker        Background = "Cyber Bunker (Concrete, servers, neon, wires)"
	BackgroundVersailles         Background = "Versailles Palace (Mirrors, gold, rococo)"
	BackgroundMuseumGallery      Background = "Modern Art Gallery (White walls, minimalism)"
	BackgroundTropicalJungle     Background = "Tropical Jungle (Vines, waterfall, exotic)"
	BackgroundAbstractAura       Background = "Abstract Aura (Gradients, blur, colored light)"
	BackgroundCosmicVoid         Background = "Cosmic Void (Space, stars, nebulae)"
	BackgroundFluidMarble        Background = "Fluid Marble (Liquid marble, paint swirls)"
	BackgroundHolographicFoil    Background = "Holographic Foil (Holography, iridescence, metal)"
	BackgroundNoiseGradient      Background = "Noise Gradient (Grainy gradient, noise)"
	BackgroundGeometricPatterns  Background = "Geometric Patterns (Lines, shapes, grid)"
	BackgroundFloralPattern      Background = "Floral Pattern (Wallpaper, many flowers, pattern)"
	BackgroundSilkTexture        Background = "Silk & Satin (Silk, fabric folds, shine)"
	BackgroundGoldDust           Background = "Gold Dust Overlay (Gold dust, bokeh)"
	BackgroundPrismLight         Background = "Prism Light (Light refraction, rainbow)"
	BackgroundSmokeMist          Background = "Smoke & Mist (Smoke, fog, mystery)"
	BackgroundChromeLiquid       Background = "Chrome Liquid (Liquid chrome, 3D metal)"
	BackgroundWhiteCyclorama     Background = "White Cyclorama (White background, studio, air)"
	BackgroundBeigePlaster       Background = "Beige Plaster (Beige plaster, warmth)"
	BackgroundShadowPlay         Background = "Shadow Play (Plant shadows on a wall)"
	BackgroundConcreteMinimal    Background = "Concrete Minimal (Grey concrete, purity)"
	BackgroundFrostedGlass       Background = "Frosted Glass (Frosted glass, blur)"
	BackgroundClearSky           Background = "Clear Sky (Clear sky, gradient, freedom)"
	BackgroundPaperSheet         Background = "Clean Paper (Paper sheet, texture)"
	BackgroundSilkDrape          Background = "Silk Drape (Silk fabric, folds)"
	BackgroundWaterSurface       Background = "Water Surface (Still water, calm)"
)

// AllBackgrounds は表示順の背景一覧です。
var AllBackgrounds = []Background{
	BackgroundLuxuryVilla, BackgroundNatureRetreat, BackgroundCityLights, BackgroundArtStudio,
	BackgroundCozyHome, BackgroundBeachClub, BackgroundParisCafe, BackgroundDesertDunes,
	BackgroundBotanicalGarden, BackgroundPrivateJet, BackgroundYachtLife, BackgroundAncientLibrary,
	BackgroundFashionRunway, BackgroundInfinityPool, BackgroundNeonTokyo, BackgroundRoofParty,
	BackgroundUnderwaterWorld, BackgroundMarsColony, BackgroundCrystalCave, BackgroundVintageCar,
	BackgroundOperaHouse, BackgroundSnowyPeak, BackgroundAmalfiCoast, BackgroundNYCLoft,
	BackgroundZenGarden, BackgroundCyberBunker, BackgroundVersailles, BackgroundMuseumGallery,
	BackgroundTropicalJungle, BackgroundAbstractAura, BackgroundCosmicVoid, BackgroundFluidMarble,
	BackgroundHolographicFoil, BackgroundNoiseGradient, BackgroundGeometricPatterns, BackgroundFloralPattern,
	BackgroundSilkTexture, BackgroundGoldDust, BackgroundPrismLight, BackgroundSmokeMist,
	BackgroundChromeLiquid, BackgroundWhiteCyclorama, BackgroundBeigePlaster, BackgroundShadowPlay,
	BackgroundConcreteMinimal, BackgroundFrostedGlass, BackgroundClearSky, BackgroundPaperSheet,
	BackgroundSilkDrape, BackgroundWaterSurface,
}

// Valid は値が列挙に含まれるかを返します。
func (b Background) Valid() bool { return slices.Contains(AllBackgrounds, b) }

// LightEffect は光の演出です。
type LightEffect string

const (
	LightNoEffect            LightEffect = "No extra effects"
	LightGodRays             LightEffect = "God Rays (Sun rays, volumetric light)"
	LightAnamorphicFlare     LightEffect = "Anamorphic Lens Flare (Blue horizontal flares, cinema)"
	LightVolumetricFog       LightEffect = "Volumetric Fog & Haze (Volumetric fog, mystery)"
	LightRembrandt           LightEffect = "Rembrandt Lighting (Classic light, shadows, drama)"
	LightFilmNoir            LightEffect = "Film Noir Shadows (Blinds, hard shadows, B&W aesthetic)"
	LightDoubleColor         LightEffect = "Double Color Exposure (Blue + red light)"
	LightPrismRefraction     LightEffect = "Prism Refraction (Rainbow flares, prism)"
	LightLightLeaks          LightEffect = "Film Light Leaks (Film burns, orange flares)"
	LightGoldenHour          LightEffect = "Golden Hour Glow (Golden sunset light)"
	LightNeonHalo            LightEffect = "Neon Halo (Neon glow, rim light)"
	LightDreamyHaze          LightEffect = "Dreamy Haze (Soft haze, dream effect)"
	LightSparklesGlitter     LightEffect = "Sparkles & Glitter (Sparkles, shine, bokeh)"
	LightStudioSpotlight     LightEffect = "Studio Spotlight (Hard spotlight)"
	LightChromaticAberration LightEffect = "Chromatic Aberration (Color shift, 3D effect)"
	LightVintageGrain        LightEffect = "Heavy Film Grain (Grain, noise)"
)

// AllLightEffects は表示順の光演出一覧です。
var AllLightEffects = []LightEffect{
	LightNoEffect, LightGodRays, LightAnamorphicFlare, LightVolumetricFog, LightRembrandt,
	LightFilmNoir, LightDoubleColor, LightPrismRefraction, LightLightLeaks, LightGoldenHour,
	LightNeonHalo, LightDreamyHaze, LightSparklesGlitter, LightStudioSpotlight,
	LightChromaticAberration, LightVintageGrain,
}

// Valid は値が列挙に含まれるかを返します。
func (l LightEffect) Valid() bool { return slices.Contains(AllLightEffects, l) }

// CollageTechnique はコラージュ技法です。
type CollageTechnique string

const (
	CollageNone               CollageTechnique = "No collage (Classic Photo)"
	CollagePaintOverlay       CollageTechnique = "Paint Overlay (Paint strokes over the photo)"
	CollageGoldLeaf           CollageTechnique = "Gold Leaf & Kintsugi (Gold leaf, gilding)"
	CollageOutlineDrawing     CollageTechnique = "Outline & Doodles (Line outlines, doodles)"
	CollageCutOut             CollageTechnique = "Cut-Out / Paper Cut"
	CollagePhotoMashup        CollageTechnique = "Photo Mashup"
	CollageDigitalScrapbook   CollageTechnique = "Digital Scrapbook"
	CollageNeoVintage         CollageTechnique = "Neo-Vintage Collage"
	CollageSurreal            CollageTechnique = "Surreal Collage"
	CollageMinimalCut         CollageTechnique = "Minimal Cut Composition"
	CollageGlitch             CollageTechnique = "Glitch Collage"
	CollageBrutalism          CollageTechnique = "Brutalism Collage"
	CollageCutFrame           CollageTechnique = "Cut-Frame Collage"
	CollageMixedMedia         CollageTechnique = "Mixed Media Collage"
	CollagePopArt             CollageTechnique = "Pop-Art Collage"
	CollageEditorial          CollageTechnique = "Editorial Collage"
	CollageGrunge             CollageTechnique = "Grunge Collage"
	CollageDada               CollageTechnique = "Dada Collage"
	CollageRetroFuturism      CollageTechnique = "Retro-Futurism Collage"
	CollageAcidGraphic        CollageTechnique = "Acid Graphic Collage"
	CollageHyperpop           CollageTechnique = "Hyperpop Collage"
	CollageAbstractGeo        CollageTechnique = "Abstract Geometric Collage"
	CollageMonochrome         CollageTechnique = "Monochrome Collage"
	CollageThreeDMix          CollageTechnique = "3D Render + Photo Collage"
	CollageRippedPaper        CollageTechnique = "Ripped Paper Edges"
	CollageScotchTape         CollageTechnique = "Scotch Tape Overlay (Tape, film)"
	CollagePolaroidScatter    CollageTechnique = "Polaroid Scatter (Scattered polaroids)"
	CollageRansomNote         CollageTechnique = "Ransom Note Text (Newspaper cut-out letters)"
	CollageDoubleExposure     CollageTechnique = "Double Exposure"
	CollageHalftoneDots       CollageTechnique = "Halftone Dots (Newsprint, dots)"
	CollageVHSGlitch          CollageTechnique = "VHS Glitch (Interference, channel shift, noise)"
	CollageStencilArt         CollageTechnique = "Stencil Art (Stencils, spray paint)"
	CollageCrumpledPaper      CollageTechnique = "Crumpled Paper Texture"
	CollageNegativeSpace      CollageTechnique = "Negative Space Cut (Cut-out silhouettes)"
	CollageFabricPatchwork    CollageTechnique = "Fabric Patchwork (Fabric, seams, patches)"
	CollageKintsugiGold       CollageTechnique = "Kintsugi Gold (Golden cracks)"
	CollageBlueprintSketch    CollageTechnique = "Blueprint & Sketch (Drawings, sketches)"
	CollageXRayVision         CollageTechnique = "X-Ray Vision (X-ray effect)"
	CollagePixelSorting       CollageTechnique = "Pixel Sorting (Stretched pixels)"
	CollageScannerDistortion  CollageTechnique = "Scanner Distortion"
	CollageStickerBomb        CollageTechnique = "Sticker Bomb (Lots of stickers)"
	CollageHandDrawnDoodles   CollageTechnique = "Hand Drawn Doodles (Drawings over the photo)"
	CollageTypographicPortait CollageTechnique = "Typographic Portrait (Portrait made of text)"
	CollagePhotoMosaic        CollageTechnique = "Photo Mosaic (Mosaic of photos)"
)

// AllCollageTechniques は表示順のコラージュ技法一覧です。
var AllCollageTechniques = []CollageTechnique{
	CollageNone, CollagePaintOverlay, CollageGoldLeaf, CollageOutlineDrawing, CollageCutOut,
	CollagePhotoMashup, CollageDigitalScrapbook, CollageNeoVintage, CollageSurreal, CollageMinimalCut,
	CollageGlitch, CollageBrutalism, CollageCutFrame, CollageMixedMedia, CollagePopArt,
	CollageEditorial, CollageGrunge, CollageDada, CollageRetroFuturism, CollageAcidGraphic,
	CollageHyperpop, CollageAbstractGeo, CollageMonochrome, CollageThreeDMix, CollageRippedPaper,
	CollageScotchTape, CollagePolaroidScatter, CollageRansomNote, CollageDoubleExposure,
	CollageHalftoneDots, CollageVHSGlitch, CollageStencilArt, CollageCrumpledPaper,
	CollageNegativeSpace, CollageFabricPatchwork, CollageKintsugiGold, CollageBlueprintSketch,
	CollageXRayVision, CollagePixelSorting, CollageScannerDistortion, CollageStickerBomb,
	CollageHandDrawnDoodles, CollageTypographicPortait, CollagePhotoMosaic,
}

// Valid は値が列挙に含まれるかを返します。
func (c CollageTechnique) Valid() bool { return slices.Contains(AllCollageTechniques, c) }

// IsCollage は「コラージュなし」以外なら true です。
func (c CollageTechnique) IsCollage() bool { return c != CollageNone }

// CollageArtist はコラージュで参照する作家です。
type CollageArtist string

const (
	ArtistNone          CollageArtist = "No specific artist"
	ArtistHannahHoch    CollageArtist = "Hannah Höch (Dadaism, vintage, strange figures)"
	ArtistRaoulHausmann CollageArtist = "Raoul Hausmann (Photomontage, mechanics)"
	ArtistManRay        CollageArtist = "Man Ray (Surrealism, rayographs)"
	ArtistHenriMatisse  CollageArtist = "Henri Matisse (Decoupage, bright cut-outs)"
	ArtistAndyWarhol    CollageArtist = "Andy Warhol (Pop art, silkscreen, repetition)"
	ArtistBarbaraKruger CollageArtist = "Barbara Kruger (Red background, white text, slogans)"
	ArtistDavidCarson   CollageArtist = "David Carson (Grunge, broken typography)"
	ArtistTerryGilliam  CollageArtist = "Terry Gilliam (Monty Python, surreal animation)"
	ArtistEugeniaLoli   CollageArtist = "Eugenia Loli (Vintage + space, pop surrealism)"
	ArtistJoeWebb       CollageArtist = "Joe Webb (Analog collage, space, retro)"
	ArtistBethHoeckel   CollageArtist = "Beth Hoeckel (Landscapes, people on the edge)"
	ArtistFrankMoth     CollageArtist = "Frank Moth (Retro-futurism, flowers, neon)"
)

// AllCollageArtists は表示順の作家一覧です。
var AllCollageArtists = []CollageArtist{
	ArtistNone, ArtistHannahHoch, ArtistRaoulHausmann, ArtistManRay, ArtistHenriMatisse,
	ArtistAndyWarhol, ArtistBarbaraKruger, ArtistDavidCarson, ArtistTerryGilliam,
	ArtistEugeniaLoli, ArtistJoeWebb, ArtistBethHoeckel, ArtistFrankMoth,
}

// Valid は値が列挙に含まれるかを返します。
func (a CollageArtist) Valid() bool { return slices.Contains(AllCollageArtists, a) }

// CompositionLayout は文字組みのレイアウトです。
type CompositionLayout string

const (
	LayoutClassicMagazine     CompositionLayout = "Classic Vogue Cover (Text over the hero)"
	LayoutMinimalCorner       CompositionLayout = "Minimal Corner (Small text in the corner)"
	LayoutFrameBorder         CompositionLayout = "Frame & Border (Text in a frame around the photo)"
	LayoutSplitScreen         CompositionLayout = "Split Screen (Photo / Text)"
	LayoutElegantScript       CompositionLayout = "Elegant Script Overlay (Handwritten text on top)"
	LayoutMinimalSans         CompositionLayout = "Minimal Clean Sans (Clean grotesque)"
	LayoutSwissGrid           CompositionLayout = "Swiss Grid (Grid, modern, clean)"
	LayoutTypographicCenter   CompositionLayout = "Big Bold Center (Text is the hero)"
	LayoutBoldCondensed       CompositionLayout = "Bold Condensed (Narrow bold font, poster)"
	LayoutMagazineBottom      CompositionLayout = "Magazine Headline Bottom (Headline at the bottom)"
	LayoutChaoticPunk         CompositionLayout = "Chaotic Punk (Scattered text)"
	LayoutOverlappingLayers   CompositionLayout = "Overlapping Layers (Text behind and in front of the subject)"
	LayoutScatteredLetters    CompositionLayout = "Scattered Letters (Letters flying apart)"
	LayoutCircularEmblem      CompositionLayout = "Circular Text (Text in a circle)"
	LayoutDiagonalDynamic     CompositionLayout = "Diagonal Dynamic (Diagonal text)"
	LayoutTypewriterAesthetic CompositionLayout = "Typewriter Style (Typewriter)"
	LayoutTextMask            CompositionLayout = "Text Mask (Photo inside the letters)"
	LayoutNeonSign            CompositionLayout = "Neon Sign Typography (Glowing neon)"
	LayoutVerticalOriental    CompositionLayout = "Vertical Oriental (Vertical column)"
	LayoutBarcodeData         CompositionLayout = "Barcode & Technical Data (Technical labels)"
)

// AllCompositionLayouts は表示順のレイアウト一覧です。
var AllCompositionLayouts = []CompositionLayout{
	LayoutClassicMagazine, LayoutMinimalCorner, LayoutFrameBorder, LayoutSplitScreen,
	LayoutElegantScript, LayoutMinimalSans, LayoutSwissGrid, LayoutTypographicCenter,
	LayoutBoldCondensed, LayoutMagazineBottom, LayoutChaoticPunk, LayoutOverlappingLayers,
	LayoutScatteredLetters, LayoutCircularEmblem, LayoutDiagonalDynamic, LayoutTypewriterAesthetic,
	LayoutTextMask, LayoutNeonSign, LayoutVerticalOriental, LayoutBarcodeData,
}

// Valid は値が列挙に含まれるかを返します。
func (l CompositionLayout) Valid() bool { return slices.Contains(AllCompositionLayouts, l) }

// AspectRatio は生成画像のアスペクト比です。API にはこの値がそのまま渡されます。
type AspectRatio string

const (
	AspectSquare    AspectRatio = "1:1"
	AspectPortrait  AspectRatio = "3:4"
	AspectLandscape AspectRatio = "4:3"
	AspectStory     AspectRatio = "9:16"
	AspectCinematic AspectRatio = "16:9"
)

// AllAspectRatios は許可されたアスペクト比の一覧です。
var AllAspectRatios = []AspectRatio{
	AspectSquare, AspectPortrait, AspectLandscape, AspectStory, AspectCinematic,
}

// Valid は値が列挙に含まれるかを返します。
func (a AspectRatio) Valid() bool { return slices.Contains(AllAspectRatios, a) }

// Strings は列挙スライスを []string に変換します。
func Strings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
