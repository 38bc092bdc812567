package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/spf13/cobra"
)

var (
	cleanOutput string
	cleanMode   string
)

var cleanCmd = &cobra.Command{
	Use:   "clean <image>",
	Short: "画像からテキスト（またはテキストと装飾）を除去",
	Long: `生成済みのポスター画像から文字を消した版を作ります。

  --mode text_only   テキストだけを消す
  --mode remove_all  テキスト・ロゴ・装飾をすべて消す

Example:
  visionboard clean poster.png --mode remove_all -o poster-clean.png`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "", "出力ファイル (既定: <元の名前>-clean.<拡張子>)")
	cleanCmd.Flags().StringVar(&cleanMode, "mode", string(domain.RemoveTextOnly), "除去モード (text_only, remove_all)")
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	mode := domain.RemoveMode(cleanMode)
	if !mode.Valid() {
		return fmt.Errorf("不明な除去モードです: %q", cleanMode)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	img, err := newLoader(cfg, true).Load(ctx, args[0])
	if err != nil {
		return err
	}

	cleaned, err := gen.RemoveContent(ctx, img, mode)
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "-clean"
	path, err := writeImage(cleaned, cleanOutput, base)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}
