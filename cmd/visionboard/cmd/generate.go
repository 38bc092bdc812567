package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/vision-board-kit/pkg/prompt"
	"github.com/spf13/cobra"
)

var (
	generateOutput     string
	generateShowPrompt bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <brief.yaml|->",
	Short: "ブリーフから画像を生成",
	Long: `ブリーフからプロンプトを組み立てて Gemini で画像を 1 枚生成し、ファイルに保存します。

Examples:
  visionboard generate brief.yaml
  visionboard generate brief.yaml -o out/poster.png --show-prompt`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "出力ファイル (既定: visionboard-<時刻>.<拡張子>)")
	generateCmd.Flags().BoolVar(&generateShowPrompt, "show-prompt", false, "送信したプロンプトを表示")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	form, err := loadBrief(ctx, args[0], cmd.InOrStdin(), newLoader(cfg, true))
	if err != nil {
		return err
	}
	comp, err := prompt.Compose(form)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := gen.Generate(ctx, comp)
	if err != nil {
		return err
	}
	path, err := writeImage(res.Image, generateOutput, "visionboard-"+start.Format("20060102-150405"))
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "画像を保存しました", "path", path, "elapsed", time.Since(start).Round(time.Millisecond))

	out := cmd.OutOrStdout()
	if generateShowPrompt {
		fmt.Fprintln(out, res.Prompt)
		fmt.Fprintln(out)
	}
	_, err = fmt.Fprintln(out, path)
	return err
}
