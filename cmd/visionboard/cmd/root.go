// Package cmd は visionboard CLI のコマンド群です。
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shouni/vision-board-kit/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "visionboard",
	Short: "Gemini でビジョンボード（ポスター）を生成するツール",
	Long: `visionboard はテーマ・スタイル・雰囲気・タイポグラフィ・参照写真から
ポスター用のプロンプトを組み立て、Gemini の画像モデルで生成します。

  serve       HTTP/WebSocket API を起動
  prompt      ブリーフ（YAML）からプロンプトを表示
  generate    ブリーフから画像を生成
  clean       画像からテキスト等を除去
  suggest     キーワードを提案
  autoconfig  テーマに合うスタイル設定を提案
  catalog     選択肢の一覧を表示`,
	SilenceUsage: true,
}

// Execute はルートコマンドを実行します。
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "設定ファイル (YAML/TOML/JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "ログレベル (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "ログ形式 (text, json)")
	rootCmd.PersistentFlags().String("lang", "", "表示言語 (ru, ua, en)")

	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyDefaultLanguage, rootCmd.PersistentFlags().Lookup("lang"))
}

// initConfig は .env・環境変数・設定ファイルを読み込みます。
func initConfig() {
	if err := config.Init(viper.GetViper(), cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "設定の初期化に失敗しました:", err)
		os.Exit(1)
	}
}

// loadConfig は設定を読み込み、ロガーを設定します。
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, err
	}
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), cfg))
	return cfg, nil
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
