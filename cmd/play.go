package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/chainiz/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive practice run",
	RunE:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveGameConfig(cmd)
	if err != nil {
		return err
	}

	gen := newGenerator(cmd, cfg)
	ws := gen.GenerateWorksheet()
	if len(ws.Chains) == 0 {
		return fmt.Errorf("could not generate any chains for this configuration")
	}
	if ws.Short() {
		fmt.Fprintf(os.Stderr, "note: generated %d of %d requested chains\n",
			len(ws.Chains), cfg.ChainCount)
	}

	return tui.Run(ws)
}
