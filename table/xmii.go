package table

import (
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// xMII interface modes of XMIIModeParamsEntry.XMIIMode.
const (
	XMIIModeMII   uint64 = 0
	XMIIModeRMII  uint64 = 1
	XMIIModeRGMII uint64 = 2
	XMIIModeSGMII uint64 = 3
)

// XMIIModeParamsEntry selects the xMII mode of every port and whether the
// port acts as PHY (1) or MAC (0).
type XMIIModeParamsEntry struct {
	XMIIMode [5]uint64 `yaml:"xmii_mode,flow"`
	PHYMAC   [5]uint64 `yaml:"phy_mac,flow"`
}

func (*XMIIModeParamsEntry) BlockID() format.BlockID { return format.BlockXMIIModeParams }

func (e *XMIIModeParamsEntry) Layout(f *packing.Fields, _ format.Family) error {
	for i, offset := 0, 17; i < 5; i, offset = i+1, offset+3 {
		f.Uint64(&e.XMIIMode[i], offset+1, offset)
		f.Uint64(&e.PHYMAC[i], offset+2, offset+2)
	}

	return f.Err()
}
