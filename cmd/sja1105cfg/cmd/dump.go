package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	sja1105 "github.com/arloliu/sja1105"
	"github.com/arloliu/sja1105/packing"
	"github.com/arloliu/sja1105/staticconfig"
)

// loadImage parses the image file at path with the configured quirk mode,
// detecting it when set to auto.
func (a *app) loadImage(path string) (*staticconfig.ParseResult, packing.Quirks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read image: %w", err)
	}

	opts, auto, err := a.parserOptions()
	if err != nil {
		return nil, 0, err
	}

	if auto {
		res, q, err := sja1105.ParseAuto(data, opts...)
		if err != nil {
			return nil, 0, err
		}
		a.logger.V(1).Info("detected quirk mode", "quirks", q.String())

		return res, q, nil
	}

	p, err := staticconfig.NewParser(opts...)
	if err != nil {
		return nil, 0, err
	}

	res, err := p.ParseWithResult(data)
	if err != nil {
		return nil, 0, err
	}
	q, _, _ := a.cfg.QuirkMode()

	return res, q, nil
}

func printWarnings(w io.Writer, res *staticconfig.ParseResult) {
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}

func newDumpCmd(a *app) *cobra.Command {
	var asYAML bool

	dumpCmd := &cobra.Command{
		Use:   "dump <image>",
		Short: "Print the tables of a static configuration image",
		Long: `Decode a static configuration image and print every table entry.

Example:
  sja1105cfg dump config.bin
  sja1105cfg dump --yaml config.bin > config.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, q, err := a.loadImage(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asYAML {
				return res.Config.WriteYAML(out)
			}

			fmt.Fprintf(out, "quirks: %s\n", q)
			fmt.Fprintf(out, "size: %d bytes\n", res.Size)
			printWarnings(out, res)

			return res.Config.Dump(out)
		},
	}

	dumpCmd.Flags().BoolVar(&asYAML, "yaml", false, "Write the configuration as YAML")

	return dumpCmd
}
