package staticconfig

import (
	"fmt"

	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/table"
)

// StaticConfig is the decoded form of a static configuration image.
// A nil or empty slice means the table is absent from the image.
type StaticConfig struct {
	DeviceID format.DeviceID `yaml:"device_id"`

	Schedule                  []table.ScheduleEntry                  `yaml:"schedule,omitempty"`
	ScheduleEntryPoints       []table.ScheduleEntryPointsEntry       `yaml:"schedule_entry_points,omitempty"`
	VLLookup                  []table.VLLookupEntry                  `yaml:"vl_lookup,omitempty"`
	VLPolicing                []table.VLPolicingEntry                `yaml:"vl_policing,omitempty"`
	VLForwarding              []table.VLForwardingEntry              `yaml:"vl_forwarding,omitempty"`
	L2Lookup                  []table.L2LookupEntry                  `yaml:"l2_lookup,omitempty"`
	L2Policing                []table.L2PolicingEntry                `yaml:"l2_policing,omitempty"`
	VLANLookup                []table.VLANLookupEntry                `yaml:"vlan_lookup,omitempty"`
	L2Forwarding              []table.L2ForwardingEntry              `yaml:"l2_forwarding,omitempty"`
	MACConfig                 []table.MACConfigEntry                 `yaml:"mac_config,omitempty"`
	ScheduleParams            []table.ScheduleParamsEntry            `yaml:"schedule_params,omitempty"`
	ScheduleEntryPointsParams []table.ScheduleEntryPointsParamsEntry `yaml:"schedule_entry_points_params,omitempty"`
	VLForwardingParams        []table.VLForwardingParamsEntry        `yaml:"vl_forwarding_params,omitempty"`
	L2LookupParams            []table.L2LookupParamsEntry            `yaml:"l2_lookup_params,omitempty"`
	L2ForwardingParams        []table.L2ForwardingParamsEntry        `yaml:"l2_forwarding_params,omitempty"`
	ClockSyncParams           []table.ClockSyncParamsEntry           `yaml:"clock_sync_params,omitempty"`
	AVBParams                 []table.AVBParamsEntry                 `yaml:"avb_params,omitempty"`
	GeneralParams             []table.GeneralParamsEntry             `yaml:"general_params,omitempty"`
	Retagging                 []table.RetaggingEntry                 `yaml:"retagging,omitempty"`
	XMIIModeParams            []table.XMIIModeParamsEntry            `yaml:"xmii_mode_params,omitempty"`
	SGMII                     []table.SGMIIEntry                     `yaml:"sgmii,omitempty"`
}

// Family returns the device family selected by the device id.
func (c *StaticConfig) Family() format.Family {
	return c.DeviceID.Family()
}

// VLLookupFormat returns the VL lookup interpretation selected by the general
// parameters table, PSFP when there is none.
func (c *StaticConfig) VLLookupFormat() table.VLLookupFormat {
	if len(c.GeneralParams) == 0 {
		return table.VLLookupFormatPSFP
	}

	return c.GeneralParams[0].VLLookupFormat()
}

// Count returns the number of entries of a table kind.
func (c *StaticConfig) Count(id format.BlockID) int {
	s, ok := lookupSlot(id)
	if !ok {
		return 0
	}

	return s.count(c)
}

// Entry returns entry i of a table kind, or nil when out of range.
func (c *StaticConfig) Entry(id format.BlockID, i int) table.Entry {
	s, ok := lookupSlot(id)
	if !ok || i < 0 || i >= s.count(c) {
		return nil
	}

	return s.entry(c, i)
}

// Tables returns the block ids of the non-empty tables in image order.
func (c *StaticConfig) Tables() []format.BlockID {
	var ids []format.BlockID
	for _, s := range canonicalOrder {
		if s.count(c) > 0 {
			ids = append(ids, s.id)
		}
	}

	return ids
}

// Validate checks the configuration against the family of its own device id.
func (c *StaticConfig) Validate() error {
	return c.ValidateFor(c.Family())
}

// ValidateFor checks that every table exists in family and fits its capacity,
// and that the VL lookup entries agree with the general parameters.
//
// Returns:
//   - errs.ErrUnknownDevice if family is FamilyUnknown
//   - errs.ErrUnsupportedTable if a non-empty table does not exist in family
//   - errs.ErrCapacityExceeded if a table holds more entries than the chip
//   - errs.ErrInvalidField if an entry holds a value its layout cannot carry
//   - errs.ErrInvalidVLFormat if a VL lookup entry is nil or of the wrong variant
func (c *StaticConfig) ValidateFor(family format.Family) error {
	if family == format.FamilyUnknown {
		return fmt.Errorf("%w: %s", errs.ErrUnknownDevice, c.DeviceID)
	}

	for _, s := range canonicalOrder {
		n := s.count(c)
		if n == 0 {
			continue
		}

		kind, _ := table.LookupKind(s.id)
		if kind.Size(family) == 0 {
			return fmt.Errorf("%w: %s in family %s", errs.ErrUnsupportedTable, s.id, family)
		}

		if n > kind.MaxCount {
			return fmt.Errorf("%w: %s has %d entries, max %d", errs.ErrCapacityExceeded, s.id, n, kind.MaxCount)
		}

		for i := 0; i < n; i++ {
			if ch, ok := s.entry(c, i).(table.Checker); ok {
				if err := ch.Check(); err != nil {
					return fmt.Errorf("%s entry %d: %w", s.id, i, err)
				}
			}
		}
	}

	want := c.VLLookupFormat()
	for i, e := range c.VLLookup {
		if e == nil {
			return fmt.Errorf("%w: vl lookup entry %d is nil", errs.ErrInvalidVLFormat, i)
		}

		if e.Format() != want {
			return fmt.Errorf("%w: vl lookup entry %d is %s, general params select %s",
				errs.ErrInvalidVLFormat, i, e.Format(), want)
		}
	}

	return nil
}

// ValidatePart runs Validate and additionally rejects an SGMII table on parts
// without the SGMII port.
func (c *StaticConfig) ValidatePart(part format.PartNumber) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if len(c.SGMII) > 0 && !format.HasSGMII(c.DeviceID, part) {
		return fmt.Errorf("%w: %s on %s", errs.ErrUnsupportedTable, format.BlockSGMII, format.Variant(c.DeviceID, part))
	}

	return nil
}
