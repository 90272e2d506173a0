package cmd

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/abhisek/chainiz/internal/chaingen"
	"github.com/abhisek/chainiz/internal/config"
	"github.com/abhisek/chainiz/internal/levels"
)

var rootCmd = &cobra.Command{
	Use:   "chainiz",
	Short: "Chain arithmetic practice for mental math",
	Long:  "Chainiz — terminal trainer for chain problems, where each result feeds the next calculation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addGameFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(versionCmd)
}

// addGameFlags registers the flags shared by every worksheet-producing
// command.
func addGameFlags(c *cobra.Command) {
	c.Flags().Int("level", 0, "Difficulty preset number (1-39, see 'chainiz levels')")
	c.Flags().String("config", "", "Path to a JSON game-config file (overrides --level)")
	c.Flags().Int64("seed", 0, "Random seed for reproducible worksheets (0 = time-based)")
	c.Flags().Int("chains", 0, "Override the number of chains to generate")
}

// resolveGameConfig builds the generation config from --config, --level, or
// the built-in default, in that priority order.
func resolveGameConfig(cmd *cobra.Command) (chaingen.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return chaingen.Config{}, err
		}
		return applyOverrides(cmd, cfg), nil
	}
	if n, _ := cmd.Flags().GetInt("level"); n != 0 {
		l, err := levels.Get(n)
		if err != nil {
			return chaingen.Config{}, err
		}
		return applyOverrides(cmd, l.Config), nil
	}
	return applyOverrides(cmd, chaingen.DefaultConfig()), nil
}

func applyOverrides(cmd *cobra.Command, cfg chaingen.Config) chaingen.Config {
	if n, _ := cmd.Flags().GetInt("chains"); n > 0 {
		cfg.ChainCount = n
	}
	return cfg
}

// newGenerator creates a generator honoring --seed.
func newGenerator(cmd *cobra.Command, cfg chaingen.Config) *chaingen.Generator {
	var rng *rand.Rand
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	return chaingen.New(cfg, rng)
}
