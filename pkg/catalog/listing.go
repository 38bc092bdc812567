package catalog

// Listing は選択肢の一覧です。API と CLI がそのまま出力します。
type Listing struct {
	Themes             []Theme             `json:"themes" yaml:"themes"`
	Styles             []Style             `json:"styles" yaml:"styles"`
	Backgrounds        []Background        `json:"backgrounds" yaml:"backgrounds"`
	LightEffects       []LightEffect       `json:"lightEffects" yaml:"lightEffects"`
	CollageTechniques  []CollageTechnique  `json:"collageTechniques" yaml:"collageTechniques"`
	CollageArtists     []CollageArtist     `json:"collageArtists" yaml:"collageArtists"`
	CompositionLayouts []CompositionLayout `json:"compositionLayouts" yaml:"compositionLayouts"`
	AspectRatios       []AspectRatio       `json:"aspectRatios" yaml:"aspectRatios"`
}

// List は全カテゴリの選択肢を表示順で返します。
func List() Listing {
	return Listing{
		Themes:             AllThemes,
		Styles:             AllStyles,
		Backgrounds:        AllBackgrounds,
		LightEffects:       AllLightEffects,
		CollageTechniques:  AllCollageTechniques,
		CollageArtists:     AllCollageArtists,
		CompositionLayouts: AllCompositionLayouts,
		AspectRatios:       AllAspectRatios,
	}
}
