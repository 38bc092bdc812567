package domain

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidDataURI は data URI として解釈できない文字列を受け取った場合のエラーです。
var ErrInvalidDataURI = errors.New("invalid data URI")

// defaultDataURIMimeType は MIME 部が空のときに仮定する型です。
const defaultDataURIMimeType = "image/png"

// DataURI は境界を越えて受け渡す画像の表現（data:<mime>;base64,<payload>）です。
type DataURI string

// NewDataURI はバイト列から base64 の data URI を組み立てます。
func NewDataURI(mimeType string, data []byte) DataURI {
	if mimeType == "" {
		mimeType = defaultDataURIMimeType
	}
	return DataURI("data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data))
}

// IsZero は未設定なら true です。
func (d DataURI) IsZero() bool { return d == "" }

// Decode は MIME タイプとペイロードを取り出します。
// ペイロードは最初のカンマ以降、MIME は最初のコロンと最初のセミコロンの間です。
func (d DataURI) Decode() (string, []byte, error) {
	s := string(d)
	if !strings.HasPrefix(s, "data:") {
		return "", nil, fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURI)
	}
	header, payload, ok := strings.Cut(s, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload separator", ErrInvalidDataURI)
	}

	mimeType := defaultDataURIMimeType
	if _, rest, ok := strings.Cut(header, ":"); ok {
		if m, _, _ := strings.Cut(rest, ";"); m != "" {
			mimeType = m
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}
	return mimeType, data, nil
}

// ParseDataURI は文字列を検証して DataURI を返します。
func ParseDataURI(s string) (DataURI, error) {
	d := DataURI(strings.TrimSpace(s))
	if _, _, err := d.Decode(); err != nil {
		return "", err
	}
	return d, nil
}

// Attachment はリクエストに添付する画像バイナリです。
type Attachment struct {
	MimeType string
	Data     []byte
}

// GenerationResult は 1 回の生成結果です。Prompt は実際に送信した文字列です。
type GenerationResult struct {
	Image  DataURI `json:"image"`
	Prompt string  `json:"prompt"`
}

// HistoryEntry は生成履歴の 1 件です。作成後は変更しません。
type HistoryEntry struct {
	ID        string    `json:"id"`
	Image     DataURI   `json:"image"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewHistoryEntry は生成結果から新しい履歴エントリを作ります。
func NewHistoryEntry(res GenerationResult, now time.Time) HistoryEntry {
	return HistoryEntry{
		ID:        uuid.NewString(),
		Image:     res.Image,
		Prompt:    res.Prompt,
		CreatedAt: now,
	}
}

// RemoveMode は画像から何を消すかの指定です。
type RemoveMode string

const (
	RemoveTextOnly RemoveMode = "text_only"
	RemoveAll      RemoveMode = "remove_all"
)

// ErrInvalidRemoveMode は未知の編集モードが指定されたことを示します。
var ErrInvalidRemoveMode = errors.New("invalid remove mode")

// Valid は既知のモードなら true です。
func (m RemoveMode) Valid() bool {
	return m == RemoveTextOnly || m == RemoveAll
}
