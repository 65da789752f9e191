package table

import (
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// VLANLookupEntry is the port membership of one VLAN. Port sets are 5-bit masks.
type VLANLookupEntry struct {
	VIngMirr  uint64 `yaml:"ving_mirr"`
	VEgrMirr  uint64 `yaml:"vegr_mirr"`
	VMembPort uint64 `yaml:"vmemb_port"`
	VLANBC    uint64 `yaml:"vlan_bc"`
	TagPort   uint64 `yaml:"tag_port"`
	VLANID    uint64 `yaml:"vlanid"`
}

func (*VLANLookupEntry) BlockID() format.BlockID { return format.BlockVLANLookup }

func (e *VLANLookupEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.VIngMirr, 63, 59)
	f.Uint64(&e.VEgrMirr, 58, 54)
	f.Uint64(&e.VMembPort, 53, 49)
	f.Uint64(&e.VLANBC, 48, 44)
	f.Uint64(&e.TagPort, 43, 39)
	f.Uint64(&e.VLANID, 38, 27)

	return f.Err()
}

type RetaggingEntry struct {
	EgrPort      uint64 `yaml:"egr_port"`
	IngPort      uint64 `yaml:"ing_port"`
	VLANIng      uint64 `yaml:"vlan_ing"`
	VLANEgr      uint64 `yaml:"vlan_egr"`
	DoNotLearn   uint64 `yaml:"do_not_learn"`
	UseDestPorts uint64 `yaml:"use_dest_ports"`
	DestPorts    uint64 `yaml:"destports"`
}

func (*RetaggingEntry) BlockID() format.BlockID { return format.BlockRetagging }

func (e *RetaggingEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.EgrPort, 63, 59)
	f.Uint64(&e.IngPort, 58, 54)
	f.Uint64(&e.VLANIng, 53, 42)
	f.Uint64(&e.VLANEgr, 41, 30)
	f.Uint64(&e.DoNotLearn, 29, 29)
	f.Uint64(&e.UseDestPorts, 28, 28)
	f.Uint64(&e.DestPorts, 27, 23)

	return f.Err()
}
