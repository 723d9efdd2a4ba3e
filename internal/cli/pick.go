// pick.go implements the non-interactive "moods" and "pick" commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jumpinjune/memepicker/internal/tui"
)

func newMoodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moods",
		Short: "List the moods in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			for _, tag := range env.newSession().Tags() {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

func newPickCmd() *cobra.Command {
	var (
		mood     string
		animated bool
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick one random image for a mood",
		Long: `Pick one image matching --mood, chosen uniformly at random.
Prints the resolved image path and its description, or a notice when
nothing matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("animated") {
				animated = env.cfg.Picker.AnimatedOnly
			}
			runner := tui.NewFallbackRunner(env.newSession(), env.cfg.Catalog.AssetDir, cmd.OutOrStdout())
			return runner.Run(mood, animated)
		},
	}

	cmd.Flags().StringVarP(&mood, "mood", "m", "", "Mood to match (case-sensitive)")
	cmd.Flags().BoolVarP(&animated, "animated", "a", false, "Only pick animated GIFs")
	return cmd
}
