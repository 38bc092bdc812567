package cmd

import (
	"fmt"

	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/shouni/vision-board-kit/pkg/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	suggestTheme      string
	suggestStyle      string
	suggestAtmosphere string
	autoconfigTheme   string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "テーマ・スタイル・雰囲気からキーワードを提案",
	Long: `ポスターに添えるキーワード（被写体・小物・質感など）を提案します。
失敗した場合も定型の提案を表示します。

Example:
  visionboard suggest --theme "Travel & Adventure" --style "Boho Chic" --atmosphere "Beach Club,Sunset"`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

var autoconfigCmd = &cobra.Command{
	Use:   "autoconfig",
	Short: "テーマに合うスタイル設定を提案",
	Long: `テーマから美学・雰囲気・光・コラージュ・レイアウトの組み合わせを提案し、
ブリーフにそのまま使える YAML で表示します。テーマ未指定時は既定テーマを使います。`,
	Args: cobra.NoArgs,
	RunE: runAutoconfig,
}

func init() {
	rootCmd.AddCommand(suggestCmd, autoconfigCmd)

	suggestCmd.Flags().StringVar(&suggestTheme, "theme", "", "テーマ")
	suggestCmd.Flags().StringVar(&suggestStyle, "style", "", "スタイル")
	suggestCmd.Flags().StringVar(&suggestAtmosphere, "atmosphere", "", "雰囲気 (カンマ区切り)")

	autoconfigCmd.Flags().StringVar(&autoconfigTheme, "theme", string(catalog.ThemeSelfLove), "テーマ")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	keywords := gen.SuggestDetails(ctx, suggestTheme, suggestStyle, splitList(suggestAtmosphere))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), keywords)
	return err
}

func runAutoconfig(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	theme := catalog.Theme(autoconfigTheme)
	if theme == "" {
		theme = catalog.ThemeSelfLove
	}
	if !theme.Valid() {
		return fmt.Errorf("不明なテーマです: %q", autoconfigTheme)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	out := struct {
		Theme             catalog.Theme `yaml:"theme"`
		domain.AutoConfig `yaml:",inline"`
	}{Theme: theme, AutoConfig: gen.AutoConfigure(ctx, theme)}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(out)
}
