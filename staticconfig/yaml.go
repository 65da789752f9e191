package staticconfig

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/sja1105/table"
)

// plainConfig has the fields of StaticConfig without its YAML methods.
type plainConfig StaticConfig

// WriteYAML writes the configuration as YAML.
func (c *StaticConfig) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}

	return enc.Close()
}

// ReadYAML decodes a configuration written by WriteYAML or by hand.
func ReadYAML(r io.Reader) (*StaticConfig, error) {
	cfg := &StaticConfig{}
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// UnmarshalYAML decodes the VL lookup table last so that each entry is
// decoded as the variant selected by the general parameters.
func (c *StaticConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: static configuration must be a mapping", node.Line)
	}

	rest := *node
	rest.Content = nil
	var vlNode *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "vl_lookup" {
			vlNode = node.Content[i+1]
			continue
		}
		rest.Content = append(rest.Content, node.Content[i], node.Content[i+1])
	}

	if err := rest.Decode((*plainConfig)(c)); err != nil {
		return err
	}

	if vlNode == nil {
		return nil
	}

	if vlNode.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: vl_lookup must be a sequence", vlNode.Line)
	}

	vl := c.VLLookupFormat()
	c.VLLookup = make([]table.VLLookupEntry, 0, len(vlNode.Content))
	for _, item := range vlNode.Content {
		e, err := table.NewVLLookupEntry(vl)
		if err != nil {
			return err
		}

		if err := item.Decode(e); err != nil {
			return fmt.Errorf("line %d: %s entry: %w", item.Line, vl, err)
		}
		c.VLLookup = append(c.VLLookup, e)
	}

	return nil
}
