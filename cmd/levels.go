package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/chainiz/internal/levels"
	"github.com/abhisek/chainiz/internal/ui/theme"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the difficulty presets",
	RunE:  runLevels,
}

func init() {
	levelsCmd.Flags().String("category", "", "Only show one category (addition, subtraction, multiplication, division, mixed)")
}

func runLevels(cmd *cobra.Command, args []string) error {
	catVal, _ := cmd.Flags().GetString("category")

	cats := levels.AllCategories()
	if catVal != "" {
		cat := levels.Category(strings.ToLower(catVal))
		if len(levels.ByCategory(cat)) == 0 {
			return fmt.Errorf("unknown category %q", catVal)
		}
		cats = []levels.Category{cat}
	}

	for _, cat := range cats {
		fmt.Println(theme.Title.Render(cat.DisplayName()))
		for _, l := range levels.ByCategory(cat) {
			fmt.Printf("  %s  %s\n",
				theme.Highlight.Render(fmt.Sprintf("%2d", l.Number)),
				theme.Body.Render(l.Name))
			fmt.Printf("      %s\n", theme.Subtitle.Render(fmt.Sprintf(
				"%s  (to %d, %d problems per chain)",
				l.Description, l.Config.MaxResult, l.Config.ChainLength)))
		}
		fmt.Println()
	}
	return nil
}
