package cmd

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/chainiz/internal/numfmt"
	"github.com/abhisek/chainiz/internal/ui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate and print a worksheet without playing it",
	Long: `Generate a worksheet and print every chain to stdout.

Useful for inspecting what a level or config file actually produces,
and for printing paper worksheets. With --answers the results are
shown inline instead of question marks.`,
	RunE: runPreview,
}

func init() {
	addGameFlags(previewCmd)
	previewCmd.Flags().Bool("answers", false, "Print results instead of question marks")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := resolveGameConfig(cmd)
	if err != nil {
		return err
	}
	showAnswers, _ := cmd.Flags().GetBool("answers")

	gen := newGenerator(cmd, cfg)
	ws := gen.GenerateWorksheet()
	if len(ws.Chains) == 0 {
		return fmt.Errorf("could not generate any chains for this configuration")
	}
	if ws.Short() {
		fmt.Fprintf(os.Stderr, "note: generated %d of %d requested chains\n",
			len(ws.Chains), cfg.ChainCount)
	}

	numStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	for i, chain := range ws.Chains {
		fmt.Println(theme.Title.Render(fmt.Sprintf("Chain %d", i+1)) +
			theme.Subtitle.Render(fmt.Sprintf("  (start %s)", numfmt.FormatNumber(chain.StartingNumber))))
		for _, p := range chain.Problems {
			rhs := "?"
			if showAnswers {
				rhs = numStyle.Render(numfmt.FormatNumber(p.Result))
			}
			fmt.Printf("  %s %s %s = %s\n",
				numfmt.FormatNumber(p.StartValue), p.Op.Symbol(),
				numfmt.FormatNumber(p.Operand), rhs)
		}
		fmt.Println()
	}

	fmt.Println(theme.Subtitle.Render(fmt.Sprintf(
		"%d chains, %d problems", len(ws.Chains), ws.TotalProblems())))
	return nil
}
