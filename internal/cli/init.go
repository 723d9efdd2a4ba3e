// init.go implements the "memepicker init" and "memepicker validate" commands.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jumpinjune/memepicker/internal/catalog"
	"github.com/jumpinjune/memepicker/internal/config"
	"github.com/jumpinjune/memepicker/internal/picker"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write .memepicker/config.yaml with defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}

			if config.Exists(dir) && !force {
				fmt.Fprintln(cmd.OutOrStdout(), "Warning: .memepicker/config.yaml already exists.")
				fmt.Fprint(cmd.OutOrStdout(), "Overwrite? [y/N]: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				answer = strings.TrimSpace(strings.ToLower(answer))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			cfg := config.DefaultConfig()
			if cmd.Flags().Changed("catalog") {
				cfg.Catalog.Path = catalogFlag
			}
			if err := config.WriteConfig(dir, cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote .memepicker/config.yaml")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config without asking")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a catalog file for missing fields",
		Long: `Validate a YAML catalog. Every entry needs an image, alt text and at
least one non-empty mood. With no file, the configured or built-in
catalog is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cat catalog.Catalog
				err error
			)
			if len(args) == 1 {
				cat, err = catalog.Load(args[0])
			} else {
				var env *runEnv
				env, err = loadEnv(cmd)
				if env != nil {
					cat = env.catalog
				}
			}
			if err != nil {
				return err
			}

			animated := 0
			for _, e := range cat.Entries {
				if e.IsAnimated {
					animated++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries (%d animated), %d moods\n",
				cat.Name, len(cat.Entries), animated, len(picker.ExtractTags(cat.Entries)))
			return nil
		},
	}
}
