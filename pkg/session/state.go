// Package session はビジョンボード作成セッションの状態遷移（フォーム → 生成中 → 結果 → 履歴）を扱います。
// 状態は State 値として保持し、Reduce による純粋な遷移でのみ更新します。
package session

import (
	"maps"
	"slices"

	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/locale"
)

// View は表示中の画面です。
type View string

const (
	ViewForm    View = "form"
	ViewLoading View = "loading"
	ViewResult  View = "result"
)

// Section はフォームのアコーディオン区画です。
type Section string

const (
	SectionConcept    Section = "concept"
	SectionTypography Section = "typography"
	SectionVisual     Section = "visual"
	SectionPhotos     Section = "photos"
)

// AllSections は表示順の区画一覧です。
var AllSections = []Section{SectionConcept, SectionTypography, SectionVisual, SectionPhotos}

// Valid は既知の区画なら true です。
func (s Section) Valid() bool { return slices.Contains(AllSections, s) }

// Accordion は各区画の開閉状態です。
type Accordion struct {
	Concept    bool `json:"concept"`
	Typography bool `json:"typography"`
	Visual     bool `json:"visual"`
	Photos     bool `json:"photos"`
}

// NewAccordion はコンセプトだけが開いた初期状態を返します。
func NewAccordion() Accordion {
	return Accordion{Concept: true}
}

// IsOpen は区画が開いていれば true です。
func (a Accordion) IsOpen(s Section) bool {
	switch s {
	case SectionConcept:
		return a.Concept
	case SectionTypography:
		return a.Typography
	case SectionVisual:
		return a.Visual
	case SectionPhotos:
		return a.Photos
	}
	return false
}

// only は指定区画だけを open にした状態を返します。
func only(s Section, open bool) Accordion {
	return Accordion{
		Concept:    s == SectionConcept && open,
		Typography: s == SectionTypography && open,
		Visual:     s == SectionVisual && open,
		Photos:     s == SectionPhotos && open,
	}
}

// Toggle は指定区画を反転し、それ以外をすべて閉じます。
func (a Accordion) Toggle(s Section) Accordion {
	return only(s, !a.IsOpen(s))
}

// Open は指定区画だけを開きます（「次へ」ボタン）。
func (a Accordion) Open(s Section) Accordion {
	return only(s, true)
}

// assistantLayout は自動設定の結果が見えるようコンセプトとビジュアルを開いた状態です。
func assistantLayout() Accordion {
	return Accordion{Concept: true, Visual: true}
}

// State はセッション全体の状態です。値として受け渡し、共有しません。
type State struct {
	View      View                     `json:"view"`
	Language  locale.Language          `json:"language"`
	Form      domain.FormData          `json:"form"`
	Result    *domain.GenerationResult `json:"result,omitempty"`
	History   []domain.HistoryEntry    `json:"history"`
	Error     string                   `json:"error,omitempty"`
	Accordion Accordion                `json:"accordion"`

	Suggesting      bool            `json:"suggesting"`
	AutoConfiguring bool            `json:"autoConfiguring"`
	Cleaning        map[string]bool `json:"cleaning"`
	CleanError      string          `json:"cleanError,omitempty"`
}

// NewState は初期状態を返します。
func NewState(lang locale.Language) State {
	if !lang.Valid() {
		lang = locale.Default
	}
	return State{
		View:      ViewForm,
		Language:  lang,
		Form:      domain.NewFormData(),
		History:   []domain.HistoryEntry{},
		Accordion: NewAccordion(),
		Cleaning:  map[string]bool{},
	}
}

// Clone は参照型のフィールドを含めて独立したコピーを返します。
func (s State) Clone() State {
	s.Form = s.Form.Clone()
	if s.Result != nil {
		r := *s.Result
		s.Result = &r
	}
	s.History = slices.Clone(s.History)
	if s.History == nil {
		s.History = []domain.HistoryEntry{}
	}
	s.Cleaning = maps.Clone(s.Cleaning)
	if s.Cleaning == nil {
		s.Cleaning = map[string]bool{}
	}
	return s
}

// FindEntry は ID で履歴を探します。
func (s State) FindEntry(id string) (domain.HistoryEntry, bool) {
	for _, e := range s.History {
		if e.ID == id {
			return e, true
		}
	}
	return domain.HistoryEntry{}, false
}
