package table

import (
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// Port speed values of MACConfigEntry.Speed.
const (
	SpeedAuto uint64 = 0
	Speed1G   uint64 = 1
	Speed100M uint64 = 2
	Speed10M  uint64 = 3
)

// MACConfigEntry configures one of the 5 MAC ports, including the buffer
// partition of each of its 8 egress queues.
type MACConfigEntry struct {
	Enabled [8]uint64 `yaml:"enabled,flow"`
	Base    [8]uint64 `yaml:"base,flow"`
	Top     [8]uint64 `yaml:"top,flow"`

	IFG        uint64 `yaml:"ifg"`
	Speed      uint64 `yaml:"speed"`
	TPDelIn    uint64 `yaml:"tp_delin"`
	TPDelOut   uint64 `yaml:"tp_delout"`
	MaxAge     uint64 `yaml:"maxage"`
	VLANPrio   uint64 `yaml:"vlanprio"`
	VLANID     uint64 `yaml:"vlanid"`
	IngMirr    uint64 `yaml:"ing_mirr"`
	EgrMirr    uint64 `yaml:"egr_mirr"`
	DrpNonA664 uint64 `yaml:"drpnona664"`
	DrpDTag    uint64 `yaml:"drpdtag"`
	DrpUntag   uint64 `yaml:"drpuntag"`
	Retag      uint64 `yaml:"retag"`
	DynLearn   uint64 `yaml:"dyn_learn"`
	Egress     uint64 `yaml:"egress"`
	Ingress    uint64 `yaml:"ingress"`
}

func (*MACConfigEntry) BlockID() format.BlockID { return format.BlockMACConfig }

func (e *MACConfigEntry) Layout(f *packing.Fields, family format.Family) error {
	var queues int
	switch family {
	case format.FamilyET:
		queues = 72
	case format.FamilyPQRS:
		queues = 104
	default:
		return unsupported(format.BlockMACConfig, family)
	}

	for i, offset := 0, queues; i < 8; i, offset = i+1, offset+19 {
		f.Uint64(&e.Enabled[i], offset, offset)
		f.Uint64(&e.Base[i], offset+9, offset+1)
		f.Uint64(&e.Top[i], offset+18, offset+10)
	}

	if family == format.FamilyET {
		f.Uint64(&e.IFG, 71, 67)
		f.Uint64(&e.Speed, 66, 65)
		f.Uint64(&e.TPDelIn, 64, 49)
		f.Uint64(&e.TPDelOut, 48, 33)
		f.Uint64(&e.MaxAge, 32, 25)
		f.Uint64(&e.VLANPrio, 24, 22)
		f.Uint64(&e.VLANID, 21, 10)
		f.Uint64(&e.IngMirr, 9, 9)
		f.Uint64(&e.EgrMirr, 8, 8)
		f.Uint64(&e.DrpNonA664, 7, 7)
		f.Uint64(&e.DrpDTag, 6, 6)
		f.Uint64(&e.DrpUntag, 5, 5)
		f.Uint64(&e.Retag, 4, 4)
		f.Uint64(&e.DynLearn, 3, 3)
		f.Uint64(&e.Egress, 2, 2)
		f.Uint64(&e.Ingress, 1, 1)

		return f.Err()
	}

	f.Uint64(&e.IFG, 103, 99)
	f.Uint64(&e.Speed, 98, 97)
	f.Uint64(&e.TPDelIn, 96, 81)
	f.Uint64(&e.TPDelOut, 80, 65)
	f.Uint64(&e.MaxAge, 64, 57)
	f.Uint64(&e.VLANPrio, 56, 54)
	f.Uint64(&e.VLANID, 53, 42)
	f.Uint64(&e.IngMirr, 41, 41)
	f.Uint64(&e.EgrMirr, 40, 40)
	f.Uint64(&e.DrpNonA664, 39, 39)
	f.Uint64(&e.DrpDTag, 38, 38)
	// bits 37:36 are reserved on PQRS
	f.Uint64(&e.DrpUntag, 35, 35)
	f.Uint64(&e.Retag, 34, 34)
	f.Uint64(&e.DynLearn, 33, 33)
	f.Uint64(&e.Egress, 32, 32)
	f.Uint64(&e.Ingress, 31, 31)

	return f.Err()
}
