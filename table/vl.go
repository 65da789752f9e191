package table

import (
	"fmt"

	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// VLLookupFormat selects how the bits of a VL lookup entry are interpreted.
// It mirrors the vllupformat field of the general parameters table.
type VLLookupFormat uint8

const (
	// VLLookupFormatPSFP keys virtual links by MAC address, VLAN and ingress port.
	VLLookupFormatPSFP VLLookupFormat = 0
	// VLLookupFormatCritical keys virtual links by VLID (critical traffic).
	VLLookupFormatCritical VLLookupFormat = 1
)

func (f VLLookupFormat) String() string {
	switch f {
	case VLLookupFormatPSFP:
		return "psfp"
	case VLLookupFormatCritical:
		return "critical"
	default:
		return fmt.Sprintf("vllupformat(%d)", uint8(f))
	}
}

// VLLookupEntry is a virtual link lookup rule. It has exactly two variants,
// *VLLookupPSFP and *VLLookupCritical, whose bit ranges overlap; which one a
// packed entry holds is not recorded in the entry itself.
type VLLookupEntry interface {
	Entry
	Format() VLLookupFormat
	isVLLookupEntry()
}

// NewVLLookupEntry returns a zero entry of the variant selected by f.
func NewVLLookupEntry(f VLLookupFormat) (VLLookupEntry, error) {
	switch f {
	case VLLookupFormatPSFP:
		return &VLLookupPSFP{}, nil
	case VLLookupFormatCritical:
		return &VLLookupCritical{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidVLFormat, f)
	}
}

// VLLookupPSFP is the vllupformat=0 interpretation of a VL lookup entry.
type VLLookupPSFP struct {
	DestPorts  uint64 `yaml:"destports"`
	IsCritical uint64 `yaml:"iscritical"`
	MACAddr    uint64 `yaml:"macaddr" dump:"mac"`
	VLANID     uint64 `yaml:"vlanid"`
	Port       uint64 `yaml:"port"`
	VLANPrior  uint64 `yaml:"vlanprior"`
}

func (*VLLookupPSFP) BlockID() format.BlockID { return format.BlockVLLookup }
func (*VLLookupPSFP) Format() VLLookupFormat  { return VLLookupFormatPSFP }
func (*VLLookupPSFP) isVLLookupEntry()        {}

func (e *VLLookupPSFP) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.DestPorts, 95, 91)
	f.Uint64(&e.IsCritical, 90, 90)
	f.Uint64(&e.MACAddr, 89, 42)
	f.Uint64(&e.VLANID, 41, 30)
	f.Uint64(&e.Port, 29, 27)
	f.Uint64(&e.VLANPrior, 26, 24)

	return f.Err()
}

// VLLookupCritical is the vllupformat=1 interpretation of a VL lookup entry.
type VLLookupCritical struct {
	EgrMirr  uint64 `yaml:"egrmirr"`
	IngrMirr uint64 `yaml:"ingrmirr"`
	VLID     uint64 `yaml:"vlid"`
	Port     uint64 `yaml:"port"`
}

func (*VLLookupCritical) BlockID() format.BlockID { return format.BlockVLLookup }
func (*VLLookupCritical) Format() VLLookupFormat  { return VLLookupFormatCritical }
func (*VLLookupCritical) isVLLookupEntry()        {}

func (e *VLLookupCritical) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.EgrMirr, 95, 91)
	f.Uint64(&e.IngrMirr, 90, 90)
	f.Uint64(&e.VLID, 57, 42)
	f.Uint64(&e.Port, 29, 27)

	return f.Err()
}

// VLPolicingEntry polices one virtual link. BAG and Jitter only exist for
// rate-constrained links (Type 0); time-triggered links (Type 1) have no
// bits for them, so Check rejects non-zero values there.
type VLPolicingEntry struct {
	Type     uint64 `yaml:"type"`
	MaxLen   uint64 `yaml:"maxlen"`
	SharIndx uint64 `yaml:"sharindx"`
	BAG      uint64 `yaml:"bag"`
	Jitter   uint64 `yaml:"jitter"`
}

func (*VLPolicingEntry) BlockID() format.BlockID { return format.BlockVLPolicing }

// Check reports fields that cannot be represented in the packed entry.
func (e *VLPolicingEntry) Check() error {
	if e.Type == 1 && (e.BAG != 0 || e.Jitter != 0) {
		return fmt.Errorf("%w: bag %d and jitter %d on a time-triggered link", errs.ErrInvalidField, e.BAG, e.Jitter)
	}

	return nil
}

func (e *VLPolicingEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.Type, 63, 63)
	f.Uint64(&e.MaxLen, 62, 52)
	f.Uint64(&e.SharIndx, 51, 42)
	if f.Err() == nil && e.Type == 0 {
		f.Uint64(&e.BAG, 41, 28)
		f.Uint64(&e.Jitter, 27, 18)
	}

	return f.Err()
}

type VLForwardingEntry struct {
	Type      uint64 `yaml:"type"`
	Priority  uint64 `yaml:"priority"`
	Partition uint64 `yaml:"partition"`
	DestPorts uint64 `yaml:"destports"`
}

func (*VLForwardingEntry) BlockID() format.BlockID { return format.BlockVLForwarding }

func (e *VLForwardingEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.Type, 31, 31)
	f.Uint64(&e.Priority, 30, 28)
	f.Uint64(&e.Partition, 27, 25)
	f.Uint64(&e.DestPorts, 24, 20)

	return f.Err()
}

// VLForwardingParamsEntry splits the VL memory between the 8 partitions.
type VLForwardingParamsEntry struct {
	PartSpc [8]uint64 `yaml:"partspc,flow"`
	DebugEn uint64    `yaml:"debugen"`
}

func (*VLForwardingParamsEntry) BlockID() format.BlockID {
	return format.BlockVLForwardingParams
}

func (e *VLForwardingParamsEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Array(e.PartSpc[:], 16, 10, 10)
	f.Uint64(&e.DebugEn, 15, 15)

	return f.Err()
}
