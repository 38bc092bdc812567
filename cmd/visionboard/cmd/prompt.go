package cmd

import (
	"fmt"

	"github.com/shouni/vision-board-kit/pkg/prompt"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt <brief.yaml|->",
	Short: "ブリーフから組み立てたプロンプトを表示",
	Long: `ブリーフを読み込み、画像モデルに送るプロンプトをそのまま表示します。
API キーは不要です。

Example:
  visionboard prompt brief.yaml | pbcopy`,
	Args: cobra.ExactArgs(1),
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	form, err := loadBrief(cmd.Context(), args[0], cmd.InOrStdin(), newLoader(cfg, true))
	if err != nil {
		return err
	}
	comp, err := prompt.Compose(form)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), comp.Text)
	return err
}
