package table

import (
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// SGMIIEntry is the initial content of the SGMII PCS registers (SJA1105R/S).
// Each 16-bit register occupies the low half of one 32-bit word of the
// 36-word entry.
type SGMIIEntry struct {
	DigitalErrorCnt uint64 `yaml:"digital_error_cnt"`
	DigitalControl2 uint64 `yaml:"digital_control_2"`
	DebugControl    uint64 `yaml:"debug_control"`
	TestControl     uint64 `yaml:"test_control"`
	AutonegControl  uint64 `yaml:"autoneg_control"`
	DigitalControl1 uint64 `yaml:"digital_control_1"`
	AutonegAdv      uint64 `yaml:"autoneg_adv"`
	BasicControl    uint64 `yaml:"basic_control"`
}

func (*SGMIIEntry) BlockID() format.BlockID { return format.BlockSGMII }

func (e *SGMIIEntry) Layout(f *packing.Fields, family format.Family) error {
	if family != format.FamilyPQRS {
		return unsupported(format.BlockSGMII, family)
	}

	regs := []struct {
		v    *uint64
		word int
	}{
		{&e.DigitalErrorCnt, 4},
		{&e.DigitalControl2, 8},
		{&e.DebugControl, 15},
		{&e.TestControl, 16},
		{&e.AutonegControl, 19},
		{&e.DigitalControl1, 20},
		{&e.AutonegAdv, 31},
		{&e.BasicControl, 35},
	}
	for _, r := range regs {
		lo := r.word * 32
		f.Uint64(r.v, lo+15, lo)
	}

	return f.Err()
}
