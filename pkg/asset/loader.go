// Package asset は参照画像を data URI・URL・ローカルファイルから読み込み、DataURI に揃えます。
package asset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shouni/vision-board-kit/pkg/domain"
)

const cacheKeyPrefix = "asset:"

var (
	// ErrNotImage は読み込んだデータが画像ではないことを示します。
	ErrNotImage = errors.New("not an image")
	// ErrSourceNotAllowed は許可されていない取得元が指定されたことを示します。
	ErrSourceNotAllowed = errors.New("source not allowed")
)

// ImageCacher は、画像をキャッシュするためのインターフェースです。
type ImageCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}

// HTTPClient は、HTTPリクエストを実行し、URLからデータを取得するためのインターフェースです。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// URLValidator は取得前に URL を検証します。既定は IsSafeURL です。
type URLValidator func(rawURL string) (bool, error)

// Loader は参照画像の取得元を解決します。
type Loader struct {
	httpClient HTTPClient
	cache      ImageCacher
	expiration time.Duration
	allowFiles bool
	validate   URLValidator
}

// Option は Loader の任意設定です。
type Option func(*Loader)

// WithCache は URL 取得結果のキャッシュを設定します。
func WithCache(cache ImageCacher, ttl time.Duration) Option {
	return func(l *Loader) {
		l.cache = cache
		l.expiration = ttl
	}
}

// WithLocalFiles はローカルファイルパスの読み込みを許可します。CLI 向けです。
func WithLocalFiles() Option {
	return func(l *Loader) { l.allowFiles = true }
}

// WithURLValidator は URL の検証関数を差し替えます。
func WithURLValidator(v URLValidator) Option {
	return func(l *Loader) { l.validate = v }
}

// NewLoader は Loader を初期化します。httpClient が nil の場合は URL を扱いません。
func NewLoader(httpClient HTTPClient, opts ...Option) *Loader {
	l := &Loader{
		httpClient: httpClient,
		validate:   IsSafeURL,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load は data URI・http(s) URL・ファイルパスのいずれかを DataURI に変換します。
func (l *Loader) Load(ctx context.Context, source string) (domain.DataURI, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return "", nil
	case strings.HasPrefix(source, "data:"):
		return domain.ParseDataURI(source)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return l.loadURL(ctx, source)
	default:
		return l.loadFile(source)
	}
}

func (l *Loader) loadURL(ctx context.Context, rawURL string) (domain.DataURI, error) {
	if l.httpClient == nil {
		return "", fmt.Errorf("%w: URL の取得は無効です", ErrSourceNotAllowed)
	}

	key := cacheKeyPrefix + rawURL
	if l.cache != nil {
		if val, ok := l.cache.Get(key); ok {
			if d, ok := val.(domain.DataURI); ok {
				return d, nil
			}
		}
	}

	if safe, err := l.validate(rawURL); err != nil || !safe {
		return "", fmt.Errorf("安全ではないURLが指定されました: %w", errors.Join(ErrSourceNotAllowed, err))
	}

	data, err := l.httpClient.FetchBytes(ctx, rawURL)
	if err != nil {
		return "", fmt.Errorf("参照画像の取得に失敗しました: %w", err)
	}
	d, err := toDataURI(data)
	if err != nil {
		return "", err
	}

	if l.cache != nil {
		l.cache.Set(key, d, l.expiration)
	}
	slog.DebugContext(ctx, "参照画像を取得しました", "url", rawURL, "bytes", len(data))
	return d, nil
}

func (l *Loader) loadFile(path string) (domain.DataURI, error) {
	if !l.allowFiles {
		return "", fmt.Errorf("%w: ローカルファイルは読み込めません: %s", ErrSourceNotAllowed, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("参照画像の読み込みに失敗しました: %w", err)
	}
	return toDataURI(data)
}

func toDataURI(data []byte) (domain.DataURI, error) {
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mimeType)
	}
	return domain.NewDataURI(mimeType, data), nil
}
