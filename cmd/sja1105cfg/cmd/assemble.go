package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/sja1105/staticconfig"
)

func newAssembleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assemble <config.yaml> <image>",
		Short: "Build a static configuration image from YAML",
		Long: `Read a configuration in the YAML form written by "dump --yaml",
validate it and write the binary image.

With --quirks auto the image is written in the default mode.

Example:
  sja1105cfg assemble config.yaml config.bin
  sja1105cfg assemble --quirks little-endian config.yaml config.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open config: %w", err)
			}
			defer f.Close()

			cfg, err := staticconfig.ReadYAML(f)
			if err != nil {
				return err
			}

			q, _, err := a.cfg.QuirkMode()
			if err != nil {
				return err
			}

			asm, err := staticconfig.NewAssembler(
				staticconfig.WithQuirks(q),
				staticconfig.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			image, err := asm.Assemble(cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], image, 0o644); err != nil {
				return fmt.Errorf("failed to write image: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d bytes, %d tables\n", args[1], len(image), len(cfg.Tables()))

			return nil
		},
	}
}
