package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shouni/vision-board-kit/pkg/catalog"
)

// FormData はビジョンボードのブリーフ全体です。1 セッションが 1 つだけ保持します。
type FormData struct {
	TextTop       string `json:"textTop" yaml:"textTop"`
	MainText      string `json:"mainText" yaml:"mainText"`
	SecondaryText string `json:"secondaryText" yaml:"secondaryText"`
	SubText       string `json:"subText" yaml:"subText"`
	TextBottom    string `json:"textBottom" yaml:"textBottom"`
	Tagline       string `json:"tagline" yaml:"tagline"`

	CompositionLayout catalog.CompositionLayout `json:"compositionLayout" yaml:"compositionLayout"`
	Theme             catalog.Theme             `json:"theme" yaml:"theme"`
	CollageTechnique  catalog.CollageTechnique  `json:"collageTechnique" yaml:"collageTechnique"`
	CollageArtist     catalog.CollageArtist     `json:"collageArtist" yaml:"collageArtist"`
	Keywords          string                    `json:"keywords" yaml:"keywords"`
	Aesthetic         catalog.Style             `json:"aesthetic" yaml:"aesthetic"`
	Atmosphere        []string                  `json:"atmosphere" yaml:"atmosphere"`
	LightEffect       catalog.LightEffect       `json:"lightEffect" yaml:"lightEffect"`
	AspectRatio       catalog.AspectRatio       `json:"aspectRatio" yaml:"aspectRatio"`

	ReferenceImage       DataURI `json:"referenceImage,omitempty" yaml:"referenceImage,omitempty"`
	SecondReferenceImage DataURI `json:"secondReferenceImage,omitempty" yaml:"secondReferenceImage,omitempty"`
}

// NewFormData は初期値を設定した FormData を返します。
func NewFormData() FormData {
	return FormData{
		CompositionLayout: catalog.LayoutClassicMagazine,
		CollageTechnique:  catalog.CollageNone,
		CollageArtist:     catalog.ArtistNone,
		Atmosphere:        []string{},
		LightEffect:       catalog.LightNoEffect,
		AspectRatio:       catalog.AspectPortrait,
	}
}

// Clone は Atmosphere を含めて独立したコピーを返します。
func (f FormData) Clone() FormData {
	f.Atmosphere = slices.Clone(f.Atmosphere)
	if f.Atmosphere == nil {
		f.Atmosphere = []string{}
	}
	return f
}

// SetCollageTechnique は技法を設定し、「コラージュなし」なら作家もリセットします。
func (f *FormData) SetCollageTechnique(t catalog.CollageTechnique) {
	f.CollageTechnique = t
	if !t.IsCollage() {
		f.CollageArtist = catalog.ArtistNone
	}
}

// ClearCollage は技法と作家をまとめて解除します。
func (f *FormData) ClearCollage() {
	f.SetCollageTechnique(catalog.CollageNone)
}

// AddAtmosphere は前後の空白を除いて末尾に追加します。空文字や重複は無視し、追加したかを返します。
func (f *FormData) AddAtmosphere(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || slices.Contains(f.Atmosphere, value) {
		return false
	}
	f.Atmosphere = append(f.Atmosphere, value)
	return true
}

// RemoveAtmosphere は一致する要素を取り除き、取り除いたかを返します。
func (f *FormData) RemoveAtmosphere(value string) bool {
	value = strings.TrimSpace(value)
	i := slices.Index(f.Atmosphere, value)
	if i < 0 {
		return false
	}
	f.Atmosphere = slices.Delete(f.Atmosphere, i, i+1)
	return true
}

// HasText は 6 つのテキスト欄のいずれかに空白以外の文字があれば true です。
func (f FormData) HasText() bool {
	for _, s := range []string{f.TextTop, f.MainText, f.SecondaryText, f.SubText, f.TextBottom, f.Tagline} {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

// Normalize は外部から受け取った FormData の不変条件を回復します。
// 空の必須項目は初期値に戻し、Atmosphere の重複を除き、コラージュなしの場合は作家を外します。
func (f *FormData) Normalize() {
	def := NewFormData()
	if f.CompositionLayout == "" {
		f.CompositionLayout = def.CompositionLayout
	}
	if f.CollageTechnique == "" {
		f.CollageTechnique = def.CollageTechnique
	}
	if f.CollageArtist == "" {
		f.CollageArtist = def.CollageArtist
	}
	if f.LightEffect == "" {
		f.LightEffect = def.LightEffect
	}
	if !f.AspectRatio.Valid() {
		f.AspectRatio = def.AspectRatio
	}

	atmosphere := f.Atmosphere
	f.Atmosphere = make([]string, 0, len(atmosphere))
	for _, a := range atmosphere {
		f.AddAtmosphere(a)
	}

	f.SetCollageTechnique(f.CollageTechnique)
}

// Validate は列挙項目が既知の値かを確認します。空の任意項目は許容します。
func (f FormData) Validate() error {
	if f.Theme != "" && !f.Theme.Valid() {
		return fmt.Errorf("unknown theme: %q", f.Theme)
	}
	if f.Aesthetic != "" && !f.Aesthetic.Valid() {
		return fmt.Errorf("unknown aesthetic: %q", f.Aesthetic)
	}
	if !f.CompositionLayout.Valid() {
		return fmt.Errorf("unknown composition layout: %q", f.CompositionLayout)
	}
	if !f.CollageTechnique.Valid() {
		return fmt.Errorf("unknown collage technique: %q", f.CollageTechnique)
	}
	if !f.CollageArtist.Valid() {
		return fmt.Errorf("unknown collage artist: %q", f.CollageArtist)
	}
	if !f.LightEffect.Valid() {
		return fmt.Errorf("unknown light effect: %q", f.LightEffect)
	}
	if !f.AspectRatio.Valid() {
		return fmt.Errorf("unknown aspect ratio: %q", f.AspectRatio)
	}
	for _, ref := range []DataURI{f.ReferenceImage, f.SecondReferenceImage} {
		if ref.IsZero() {
			continue
		}
		if _, _, err := ref.Decode(); err != nil {
			return err
		}
	}
	return nil
}

// ReferenceSlot は参照画像の差し込み先です。
type ReferenceSlot string

const (
	PrimaryReference   ReferenceSlot = "primary"
	SecondaryReference ReferenceSlot = "secondary"
)

// SetReference は指定スロットの参照画像を設定します。空の DataURI は解除を意味します。
func (f *FormData) SetReference(slot ReferenceSlot, img DataURI) error {
	switch slot {
	case PrimaryReference:
		f.ReferenceImage = img
	case SecondaryReference:
		f.SecondReferenceImage = img
	default:
		return fmt.Errorf("unknown reference slot: %q", slot)
	}
	return nil
}

// AutoConfig は自動スタイル設定の部分結果です。どのフィールドも空でありえます。
type AutoConfig struct {
	Aesthetic         catalog.Style             `json:"aesthetic,omitempty" yaml:"aesthetic,omitempty"`
	Atmosphere        []string                  `json:"atmosphere,omitempty" yaml:"atmosphere,omitempty"`
	LightEffect       catalog.LightEffect       `json:"lightEffect,omitempty" yaml:"lightEffect,omitempty"`
	CollageTechnique  catalog.CollageTechnique  `json:"collageTechnique,omitempty" yaml:"collageTechnique,omitempty"`
	CollageArtist     catalog.CollageArtist     `json:"collageArtist,omitempty" yaml:"collageArtist,omitempty"`
	CompositionLayout catalog.CompositionLayout `json:"compositionLayout,omitempty" yaml:"compositionLayout,omitempty"`
	Keywords          string                    `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// IsEmpty はどのフィールドも設定されていなければ true です。
func (c AutoConfig) IsEmpty() bool {
	return c.Aesthetic == "" && len(c.Atmosphere) == 0 && c.LightEffect == "" &&
		c.CollageTechnique == "" && c.CollageArtist == "" && c.CompositionLayout == "" &&
		c.Keywords == ""
}

// ApplyAutoConfig は空でない項目だけを上書きし、不変条件を回復します。
func (f *FormData) ApplyAutoConfig(c AutoConfig) {
	if c.Aesthetic != "" {
		f.Aesthetic = c.Aesthetic
	}
	if len(c.Atmosphere) > 0 {
		f.Atmosphere = slices.Clone(c.Atmosphere)
	}
	if c.LightEffect != "" {
		f.LightEffect = c.LightEffect
	}
	if c.CollageTechnique != "" {
		f.CollageTechnique = c.CollageTechnique
	}
	if c.CollageArtist != "" {
		f.CollageArtist = c.CollageArtist
	}
	if c.CompositionLayout != "" {
		f.CompositionLayout = c.CompositionLayout
	}
	if c.Keywords != "" {
		f.Keywords = c.Keywords
	}
	f.Normalize()
}
