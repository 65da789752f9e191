package table

import (
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// L2LookupEntry is a static FDB entry.
//
// The PQRS family adds a mask for every key field (MaskIOTag, MaskVLANID,
// MaskMACAddr) and the IOTag key; those fields are not part of the ET layout
// and are ignored there.
type L2LookupEntry struct {
	VLANID    uint64 `yaml:"vlanid"`
	MACAddr   uint64 `yaml:"macaddr" dump:"mac"`
	DestPorts uint64 `yaml:"destports"`
	EnfPort   uint64 `yaml:"enfport"`
	Index     uint64 `yaml:"index"`

	// PQRS only
	MaskIOTag   uint64 `yaml:"mask_iotag,omitempty"`
	MaskVLANID  uint64 `yaml:"mask_vlanid,omitempty"`
	MaskMACAddr uint64 `yaml:"mask_macaddr,omitempty" dump:"mac"`
	IOTag       uint64 `yaml:"iotag,omitempty"`
}

func (*L2LookupEntry) BlockID() format.BlockID { return format.BlockL2Lookup }

func (e *L2LookupEntry) Layout(f *packing.Fields, family format.Family) error {
	switch family {
	case format.FamilyET:
		f.Uint64(&e.VLANID, 95, 84)
		f.Uint64(&e.MACAddr, 83, 36)
		f.Uint64(&e.DestPorts, 35, 31)
		f.Uint64(&e.EnfPort, 30, 30)
		f.Uint64(&e.Index, 29, 20)
	case format.FamilyPQRS:
		f.Uint64(&e.MaskIOTag, 143, 143)
		f.Uint64(&e.MaskVLANID, 142, 131)
		f.Uint64(&e.MaskMACAddr, 130, 83)
		f.Uint64(&e.IOTag, 82, 82)
		f.Uint64(&e.VLANID, 81, 70)
		f.Uint64(&e.MACAddr, 69, 22)
		f.Uint64(&e.DestPorts, 21, 17)
		f.Uint64(&e.EnfPort, 16, 16)
		f.Uint64(&e.Index, 15, 6)
	default:
		return unsupported(format.BlockL2Lookup, family)
	}

	return f.Err()
}

// L2LookupParamsEntry configures address learning.
//
// The families share only the ageing and learning switches: ET has a hash
// table (DynTbSz, Poly) while PQRS has per-port address limits and a
// dynamic space split.
type L2LookupParamsEntry struct {
	MaxAge       uint64 `yaml:"maxage"`
	SharedLearn  uint64 `yaml:"shared_learn"`
	NoEnfHostPrt uint64 `yaml:"no_enf_hostprt"`
	NoMgmtLearn  uint64 `yaml:"no_mgmt_learn"`

	// ET only
	DynTbSz uint64 `yaml:"dyn_tbsz,omitempty"`
	Poly    uint64 `yaml:"poly,omitempty"`

	// PQRS only
	MaxAddrP    [5]uint64 `yaml:"maxaddrp,flow,omitempty"`
	StartDynSpc uint64    `yaml:"start_dynspc,omitempty"`
	DrpNoLearn  uint64    `yaml:"drpnolearn,omitempty"`
	UseStatic   uint64    `yaml:"use_static,omitempty"`
	OwrDyn      uint64    `yaml:"owr_dyn,omitempty"`
	LearnOnce   uint64    `yaml:"learn_once,omitempty"`
}

func (*L2LookupParamsEntry) BlockID() format.BlockID { return format.BlockL2LookupParams }

func (e *L2LookupParamsEntry) Layout(f *packing.Fields, family format.Family) error {
	switch family {
	case format.FamilyET:
		f.Uint64(&e.MaxAge, 31, 17)
		f.Uint64(&e.DynTbSz, 16, 14)
		f.Uint64(&e.Poly, 13, 6)
		f.Uint64(&e.SharedLearn, 5, 5)
		f.Uint64(&e.NoEnfHostPrt, 4, 4)
		f.Uint64(&e.NoMgmtLearn, 3, 3)
	case format.FamilyPQRS:
		f.Array(e.MaxAddrP[:], 58, 11, 11)
		f.Uint64(&e.MaxAge, 57, 43)
		f.Uint64(&e.StartDynSpc, 42, 33)
		f.Uint64(&e.DrpNoLearn, 32, 28)
		f.Uint64(&e.SharedLearn, 27, 27)
		f.Uint64(&e.NoEnfHostPrt, 26, 26)
		f.Uint64(&e.NoMgmtLearn, 25, 25)
		f.Uint64(&e.UseStatic, 24, 24)
		f.Uint64(&e.OwrDyn, 23, 23)
		f.Uint64(&e.LearnOnce, 22, 22)
	default:
		return unsupported(format.BlockL2LookupParams, family)
	}

	return f.Err()
}

type L2PolicingEntry struct {
	SharIndx  uint64 `yaml:"sharindx"`
	SMax      uint64 `yaml:"smax"`
	Rate      uint64 `yaml:"rate"`
	MaxLen    uint64 `yaml:"maxlen"`
	Partition uint64 `yaml:"partition"`
}

func (*L2PolicingEntry) BlockID() format.BlockID { return format.BlockL2Policing }

func (e *L2PolicingEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.SharIndx, 63, 58)
	f.Uint64(&e.SMax, 57, 42)
	f.Uint64(&e.Rate, 41, 26)
	f.Uint64(&e.MaxLen, 25, 15)
	f.Uint64(&e.Partition, 14, 12)

	return f.Err()
}

// L2ForwardingEntry holds the forwarding domains of one port (entries 0-4) or
// the egress priority regeneration of one VLAN priority (entries 5-12).
type L2ForwardingEntry struct {
	BCDomain  uint64    `yaml:"bc_domain"`
	ReachPort uint64    `yaml:"reach_port"`
	FLDomain  uint64    `yaml:"fl_domain"`
	VLANPMap  [8]uint64 `yaml:"vlan_pmap,flow"`
}

func (*L2ForwardingEntry) BlockID() format.BlockID { return format.BlockL2Forwarding }

func (e *L2ForwardingEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.BCDomain, 63, 59)
	f.Uint64(&e.ReachPort, 58, 54)
	f.Uint64(&e.FLDomain, 53, 49)
	f.Array(e.VLANPMap[:], 25, 3, 3)

	return f.Err()
}

type L2ForwardingParamsEntry struct {
	MaxDynP uint64    `yaml:"max_dynp"`
	PartSpc [8]uint64 `yaml:"part_spc,flow"`
}

func (*L2ForwardingParamsEntry) BlockID() format.BlockID {
	return format.BlockL2ForwardingParams
}

func (e *L2ForwardingParamsEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.MaxDynP, 95, 93)
	f.Array(e.PartSpc[:], 13, 10, 10)

	return f.Err()
}
