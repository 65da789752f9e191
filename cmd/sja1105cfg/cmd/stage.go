package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/sja1105/staging"
	"github.com/arloliu/sja1105/staticconfig"
)

func newStageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stage <image> <staged>",
		Short: "Wrap an image into a compressed staging file",
		Long: `Check a static configuration image and store it in a staging
file together with its quirk mode and an integrity digest.

Example:
  sja1105cfg stage config.bin config.stg
  sja1105cfg stage --compression lz4 config.bin config.stg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, q, err := a.loadImage(args[0])
			if err != nil {
				return err
			}

			ct, err := a.cfg.CompressionType()
			if err != nil {
				return err
			}

			image, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}

			// Only the configuration proper is staged; trailing bytes are not.
			err = staging.WriteFile(args[1], image[:res.Size],
				staging.WithQuirks(q),
				staging.WithCompression(ct),
				staging.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			staged, err := staging.ReadFile(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %s\n", args[1], staged.Header)

			return nil
		},
	}
}

func newUnstageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unstage <staged> <image>",
		Short: "Extract the image of a staging file",
		Long: `Decode a staging file, verify its digest and the image it holds,
and write the raw image.

Example:
  sja1105cfg unstage config.stg config.bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			staged, err := staging.ReadFile(args[0])
			if err != nil {
				return err
			}

			p, err := staticconfig.NewParser(
				staticconfig.WithEngine(staged.Engine()),
				staticconfig.WithLogger(a.logger),
				staticconfig.WithStrictLength(a.cfg.StrictLength),
			)
			if err != nil {
				return err
			}

			res, err := p.ParseWithResult(staged.Image)
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[1], staged.Image, 0o644); err != nil {
				return fmt.Errorf("failed to write image: %w", err)
			}

			out := cmd.OutOrStdout()
			printWarnings(out, res)
			fmt.Fprintf(out, "wrote %s: %s\n", args[1], staged.Header)

			return nil
		},
	}
}
