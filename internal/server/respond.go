package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shouni/vision-board-kit/pkg/asset"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/shouni/vision-board-kit/pkg/session"
)

// maxBodyBytes は参照画像の data URI を含むリクエストボディの上限です。
const maxBodyBytes = 32 << 20

// errBadRequest はリクエストボディが不正であることを示します。
var errBadRequest = errors.New("bad request")

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorCode(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// writeError はエラーを HTTP ステータスに変換して返します。
// どの既知のエラーにも当たらない場合は fallback を使います。message が空ならエラー文言を返します。
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback int, message string) {
	status, code := classify(err, fallback)
	if message == "" || status != fallback {
		message = err.Error()
	}
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "リクエストの処理に失敗しました", "path", r.URL.Path, "status", status, "error", err)
	}
	writeErrorCode(w, status, code, message)
}

func classify(err error, fallback int) (int, string) {
	switch {
	case errors.Is(err, session.ErrBusy),
		errors.Is(err, session.ErrCleanInProgress),
		errors.Is(err, session.ErrNoResult),
		errors.Is(err, session.ErrInvalidTransition):
		return http.StatusConflict, "conflict"
	case errors.Is(err, session.ErrEntryNotFound),
		errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, errBadRequest),
		errors.Is(err, session.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidRemoveMode),
		errors.Is(err, domain.ErrInvalidDataURI),
		errors.Is(err, asset.ErrNotImage),
		errors.Is(err, asset.ErrSourceNotAllowed):
		return http.StatusBadRequest, "bad_request"
	}
	switch fallback {
	case http.StatusBadGateway:
		return fallback, "backend_failure"
	case http.StatusBadRequest:
		return fallback, "bad_request"
	}
	return fallback, "internal"
}

// decodeJSON はサイズ上限付きでボディを読み込みます。
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
