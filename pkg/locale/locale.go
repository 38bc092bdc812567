// Package locale は UI メッセージの多言語テーブル（ru / ua / en）を提供します。
package locale

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Language は表示言語です。値はクライアントとの入出力にそのまま使います。
type Language string

const (
	Russian   Language = "ru"
	Ukrainian Language = "ua"
	English   Language = "en"

	// Default は元のアプリケーションと同じくロシア語です。
	Default = Russian
)

const (
	idxRU = iota
	idxUA
	idxEN
	numLanguages
)

// AllLanguages は選択可能な言語の一覧です。
var AllLanguages = []Language{Russian, Ukrainian, English}

func (l Language) index() int {
	switch l {
	case Ukrainian:
		return idxUA
	case English:
		return idxEN
	default:
		return idxRU
	}
}

// Valid は対応言語なら true を返します。
func (l Language) Valid() bool {
	switch l {
	case Russian, Ukrainian, English:
		return true
	}
	return false
}

// ParseLanguage は "ru" / "ua" / "uk" / "en" などの表記を Language に変換します。
func ParseLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return "", false
	case "ua":
		return Ukrainian, true
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ru":
		return Russian, true
	case "uk":
		return Ukrainian, true
	case "en":
		return English, true
	}
	return "", false
}

// x/text ではウクライナ語は "uk" なので、内部コード "ua" との対応をここで持ちます。
var (
	supportedTags = []language.Tag{language.Russian, language.Ukrainian, language.English}
	matcher       = language.NewMatcher(supportedTags)
)

// Match は Accept-Language ヘッダーの値から最も近い言語を選びます。
// 一致しない場合は fallback を返します。
func Match(acceptLanguage string, fallback Language) Language {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	switch idx {
	case 0:
		return Russian
	case 1:
		return Ukrainian
	default:
		return English
	}
}

type ctxKey struct{}

// WithLanguage は言語をコンテキストに格納します。
func WithLanguage(ctx context.Context, lang Language) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

// FromContext はコンテキストの言語を返します。未設定なら Default です。
func FromContext(ctx context.Context) Language {
	if v, ok := ctx.Value(ctxKey{}).(Language); ok && v.Valid() {
		return v
	}
	return Default
}
