package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/sja1105/format"
)

var partNumbers = map[string]format.PartNumber{
	"":  format.PartNumberUnknown,
	"p": format.PartNumberSJA1105P,
	"q": format.PartNumberSJA1105Q,
	"r": format.PartNumberSJA1105R,
	"s": format.PartNumberSJA1105S,
}

func parsePart(s string) (format.PartNumber, error) {
	part, ok := partNumbers[strings.TrimPrefix(strings.ToLower(s), "sja1105")]
	if !ok {
		return 0, fmt.Errorf("unknown part %q", s)
	}

	return part, nil
}

func newValidateCmd(a *app) *cobra.Command {
	var partName string

	validateCmd := &cobra.Command{
		Use:   "validate <image>",
		Short: "Check a static configuration image",
		Long: `Decode a static configuration image and check it against the
table capacities of its device. With --part the tables are also
checked against the ports of that part.

Example:
  sja1105cfg validate config.bin
  sja1105cfg validate --part R config.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := parsePart(partName)
			if err != nil {
				return err
			}

			res, _, err := a.loadImage(args[0])
			if err != nil {
				return err
			}

			variant := format.Variant(res.Config.DeviceID, part)
			if variant == "" {
				return fmt.Errorf("part %s does not match device %s", partName, res.Config.DeviceID)
			}

			if err := res.Config.ValidatePart(part); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printWarnings(out, res)
			fmt.Fprintf(out, "ok: %s, %d tables\n", variant, len(res.Config.Tables()))

			return nil
		},
	}

	validateCmd.Flags().StringVar(&partName, "part", "", "Part letter of a P/Q/R/S device (P, Q, R or S)")

	return validateCmd
}
