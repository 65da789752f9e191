package staticconfig

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/sja1105/table"
)

// Dump writes a human-readable rendering of every table, entry by entry.
func (c *StaticConfig) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "device id: 0x%08x (%s, family %s)\n", uint32(c.DeviceID), c.DeviceID, c.Family()); err != nil {
		return err
	}

	for _, s := range canonicalOrder {
		n := s.count(c)
		if n == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "\n%s: %d entries\n", s.id, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			var sb strings.Builder
			if err := table.Describe(&sb, s.entry(c, i)); err != nil {
				return err
			}

			if _, err := fmt.Fprintf(w, "  [%d]\n%s", i, indent(sb.String(), "    ")); err != nil {
				return err
			}
		}
	}

	return nil
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		sb.WriteString(prefix)
		sb.WriteString(line)
	}

	return sb.String()
}
