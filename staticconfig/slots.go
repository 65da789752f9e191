package staticconfig

import (
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/table"
)

// slot binds a table kind to its slice in StaticConfig.
type slot struct {
	id    format.BlockID
	count func(c *StaticConfig) int
	entry func(c *StaticConfig, i int) table.Entry
	// resize replaces the slice with n zero entries of the given VL format.
	resize func(c *StaticConfig, n int, vl table.VLLookupFormat) error
}

func sliceSlot[E any, P interface {
	*E
	table.Entry
}](id format.BlockID, field func(c *StaticConfig) *[]E) slot {
	return slot{
		id:    id,
		count: func(c *StaticConfig) int { return len(*field(c)) },
		entry: func(c *StaticConfig, i int) table.Entry { return P(&(*field(c))[i]) },
		resize: func(c *StaticConfig, n int, _ table.VLLookupFormat) error {
			*field(c) = make([]E, n)
			return nil
		},
	}
}

var vlLookupSlot = slot{
	id:    format.BlockVLLookup,
	count: func(c *StaticConfig) int { return len(c.VLLookup) },
	entry: func(c *StaticConfig, i int) table.Entry { return c.VLLookup[i] },
	resize: func(c *StaticConfig, n int, vl table.VLLookupFormat) error {
		entries := make([]table.VLLookupEntry, n)
		for i := range entries {
			e, err := table.NewVLLookupEntry(vl)
			if err != nil {
				return err
			}
			entries[i] = e
		}
		c.VLLookup = entries

		return nil
	},
}

// canonicalOrder lists every table kind in the order tables are written.
var canonicalOrder = []slot{
	sliceSlot(format.BlockSchedule, func(c *StaticConfig) *[]table.ScheduleEntry { return &c.Schedule }),
	sliceSlot(format.BlockScheduleEntryPoints, func(c *StaticConfig) *[]table.ScheduleEntryPointsEntry {
		return &c.ScheduleEntryPoints
	}),
	vlLookupSlot,
	sliceSlot(format.BlockVLPolicing, func(c *StaticConfig) *[]table.VLPolicingEntry { return &c.VLPolicing }),
	sliceSlot(format.BlockVLForwarding, func(c *StaticConfig) *[]table.VLForwardingEntry { return &c.VLForwarding }),
	sliceSlot(format.BlockL2Lookup, func(c *StaticConfig) *[]table.L2LookupEntry { return &c.L2Lookup }),
	sliceSlot(format.BlockL2Policing, func(c *StaticConfig) *[]table.L2PolicingEntry { return &c.L2Policing }),
	sliceSlot(format.BlockVLANLookup, func(c *StaticConfig) *[]table.VLANLookupEntry { return &c.VLANLookup }),
	sliceSlot(format.BlockL2Forwarding, func(c *StaticConfig) *[]table.L2ForwardingEntry { return &c.L2Forwarding }),
	sliceSlot(format.BlockMACConfig, func(c *StaticConfig) *[]table.MACConfigEntry { return &c.MACConfig }),
	sliceSlot(format.BlockScheduleParams, func(c *StaticConfig) *[]table.ScheduleParamsEntry { return &c.ScheduleParams }),
	sliceSlot(format.BlockScheduleEntryPointsParams, func(c *StaticConfig) *[]table.ScheduleEntryPointsParamsEntry {
		return &c.ScheduleEntryPointsParams
	}),
	sliceSlot(format.BlockVLForwardingParams, func(c *StaticConfig) *[]table.VLForwardingParamsEntry {
		return &c.VLForwardingParams
	}),
	sliceSlot(format.BlockL2LookupParams, func(c *StaticConfig) *[]table.L2LookupParamsEntry { return &c.L2LookupParams }),
	sliceSlot(format.BlockL2ForwardingParams, func(c *StaticConfig) *[]table.L2ForwardingParamsEntry {
		return &c.L2ForwardingParams
	}),
	sliceSlot(format.BlockClockSyncParams, func(c *StaticConfig) *[]table.ClockSyncParamsEntry { return &c.ClockSyncParams }),
	sliceSlot(format.BlockAVBParams, func(c *StaticConfig) *[]table.AVBParamsEntry { return &c.AVBParams }),
	sliceSlot(format.BlockGeneralParams, func(c *StaticConfig) *[]table.GeneralParamsEntry { return &c.GeneralParams }),
	sliceSlot(format.BlockRetagging, func(c *StaticConfig) *[]table.RetaggingEntry { return &c.Retagging }),
	sliceSlot(format.BlockXMIIModeParams, func(c *StaticConfig) *[]table.XMIIModeParamsEntry { return &c.XMIIModeParams }),
	sliceSlot(format.BlockSGMII, func(c *StaticConfig) *[]table.SGMIIEntry { return &c.SGMII }),
}

var slotIndex = func() map[format.BlockID]int {
	m := make(map[format.BlockID]int, len(canonicalOrder))
	for i, s := range canonicalOrder {
		m[s.id] = i
	}

	return m
}()

func lookupSlot(id format.BlockID) (slot, bool) {
	i, ok := slotIndex[id]
	if !ok {
		return slot{}, false
	}

	return canonicalOrder[i], true
}
