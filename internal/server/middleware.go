package server

import (
	"net/http"

	"github.com/shouni/vision-board-kit/pkg/locale"
)

// LocaleMiddleware はリクエストの表示言語を決めてコンテキストに格納します。
// X-Locale ヘッダーを優先し、なければ Accept-Language から選びます。
func LocaleMiddleware(fallback locale.Language) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := detectLanguage(r, fallback)
			w.Header().Set("Content-Language", string(lang))
			next.ServeHTTP(w, r.WithContext(locale.WithLanguage(r.Context(), lang)))
		})
	}
}

func detectLanguage(r *http.Request, fallback locale.Language) locale.Language {
	if lang, ok := locale.ParseLanguage(r.Header.Get("X-Locale")); ok {
		return lang
	}
	return locale.Match(r.Header.Get("Accept-Language"), fallback)
}
