package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shouni/vision-board-kit/pkg/catalog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [category]",
	Short: "選択肢の一覧を表示",
	Long: `ブリーフに指定できる値の一覧を表示します。カテゴリを省略すると全カテゴリを YAML で表示します。

Categories:
  themes, styles, backgrounds, light-effects, collage-techniques,
  collage-artists, layouts, aspect-ratios`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

// catalogCategories はカテゴリ名ごとの値一覧です。
func catalogCategories() map[string][]string {
	l := catalog.List()
	return map[string][]string{
		"themes":             catalog.Strings(l.Themes),
		"styles":             catalog.Strings(l.Styles),
		"backgrounds":        catalog.Strings(l.Backgrounds),
		"light-effects":      catalog.Strings(l.LightEffects),
		"collage-techniques": catalog.Strings(l.CollageTechniques),
		"collage-artists":    catalog.Strings(l.CollageArtists),
		"layouts":            catalog.Strings(l.CompositionLayouts),
		"aspect-ratios":      catalog.Strings(l.AspectRatios),
	}
}

func runCatalog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(catalog.List())
	}

	categories := catalogCategories()
	values, ok := categories[strings.ToLower(args[0])]
	if !ok {
		names := make([]string, 0, len(categories))
		for name := range categories {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("不明なカテゴリです: %q (%s)", args[0], strings.Join(names, ", "))
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(out, v); err != nil {
			return err
		}
	}
	return nil
}
