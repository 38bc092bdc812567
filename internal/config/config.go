// Package config は環境変数・.env・設定ファイルからアプリケーション設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shouni/vision-board-kit/pkg/generator"
	"github.com/shouni/vision-board-kit/pkg/imgutil"
	"github.com/shouni/vision-board-kit/pkg/locale"
	"github.com/shouni/vision-board-kit/pkg/session"
	"github.com/spf13/viper"
)

// EnvPrefix は環境変数の接頭辞です（例: VISION_LISTEN_ADDR）。
const EnvPrefix = "VISION"

// 設定キー
const (
	KeyAPIKey               = "api_key"
	KeyImageModel           = "image_model"
	KeyTextModel            = "text_model"
	KeyListenAddr           = "listen_addr"
	KeyErrorDisplayDuration = "error_display_duration"
	KeyDefaultLanguage      = "default_language"
	KeyCompressionEnabled   = "compression.enabled"
	KeyCompressionQuality   = "compression.quality"
	KeyCompressionThreshold = "compression.threshold"
	KeyFetchTimeout         = "fetch_timeout"
	KeyCacheTTL             = "cache_ttl"
	KeyLogLevel             = "log.level"
	KeyLogFormat            = "log.format"
)

// ErrMissingAPIKey は Gemini API キーが設定されていないことを示します。
var ErrMissingAPIKey = errors.New("Gemini API キーが設定されていません (VISION_API_KEY または GEMINI_API_KEY)")

// Config はアプリケーション全体の設定です。
type Config struct {
	APIKey               string
	ImageModel           string
	TextModel            string
	ListenAddr           string
	ErrorDisplayDuration time.Duration
	DefaultLanguage      locale.Language
	Compression          imgutil.Options
	FetchTimeout         time.Duration
	CacheTTL             time.Duration
	LogLevel             slog.Level
	LogFormat            string
}

// SetDefaults は既定値を登録します。
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyImageModel, generator.DefaultImageModel)
	v.SetDefault(KeyTextModel, generator.DefaultTextModel)
	v.SetDefault(KeyListenAddr, ":8080")
	v.SetDefault(KeyErrorDisplayDuration, session.DefaultErrorDisplayDuration)
	v.SetDefault(KeyDefaultLanguage, string(locale.Default))
	v.SetDefault(KeyCompressionEnabled, true)
	v.SetDefault(KeyCompressionQuality, imgutil.DefaultQuality)
	v.SetDefault(KeyCompressionThreshold, imgutil.DefaultThreshold)
	v.SetDefault(KeyFetchTimeout, 30*time.Second)
	v.SetDefault(KeyCacheTTL, 30*time.Minute)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}

// Init は .env を読み込み、環境変数と設定ファイルを viper に結び付けます。
// cfgFile が空の場合は設定ファイルを読みません。
func Init(v *viper.Viper, cfgFile string) error {
	// .env は任意。存在しなくてもエラーにしない。
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeyAPIKey, EnvPrefix+"_API_KEY", "GEMINI_API_KEY"); err != nil {
		return fmt.Errorf("環境変数のバインドに失敗しました: %w", err)
	}

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("設定ファイルの読み込みに失敗しました (%s): %w", cfgFile, err)
	}
	slog.Debug("設定ファイルを読み込みました", "path", v.ConfigFileUsed())
	return nil
}

// Load は viper の現在値から Config を組み立てて検証します。
func Load(v *viper.Viper) (Config, error) {
	lang, ok := locale.ParseLanguage(v.GetString(KeyDefaultLanguage))
	if !ok {
		return Config{}, fmt.Errorf("未対応の言語です: %q", v.GetString(KeyDefaultLanguage))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("ログレベルが不正です: %w", err)
	}

	cfg := Config{
		APIKey:               strings.TrimSpace(v.GetString(KeyAPIKey)),
		ImageModel:           v.GetString(KeyImageModel),
		TextModel:            v.GetString(KeyTextModel),
		ListenAddr:           v.GetString(KeyListenAddr),
		ErrorDisplayDuration: v.GetDuration(KeyErrorDisplayDuration),
		DefaultLanguage:      lang,
		Compression: imgutil.Options{
			Enabled:   v.GetBool(KeyCompressionEnabled),
			Quality:   v.GetInt(KeyCompressionQuality),
			Threshold: v.GetInt(KeyCompressionThreshold),
		},
		FetchTimeout: v.GetDuration(KeyFetchTimeout),
		CacheTTL:     v.GetDuration(KeyCacheTTL),
		LogLevel:     level,
		LogFormat:    strings.ToLower(v.GetString(KeyLogFormat)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate は値の範囲を確認します。API キーの有無は RequireAPIKey で確認します。
func (c Config) Validate() error {
	if c.Compression.Quality < 1 || c.Compression.Quality > 100 {
		return fmt.Errorf("圧縮品質は 1〜100 で指定してください: %d", c.Compression.Quality)
	}
	if c.Compression.Threshold < 0 {
		return fmt.Errorf("圧縮の閾値が負の値です: %d", c.Compression.Threshold)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("取得タイムアウトは正の値で指定してください: %s", c.FetchTimeout)
	}
	if c.ErrorDisplayDuration < 0 {
		return fmt.Errorf("エラー表示時間が負の値です: %s", c.ErrorDisplayDuration)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("ログ形式は text または json です: %q", c.LogFormat)
	}
	return nil
}

// RequireAPIKey は Gemini を呼び出すコマンドの前提を確認します。
func (c Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
