package table

import (
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// AVBParamsEntry holds the MAC addresses used for PTP meta frames.
// CASMaster (PQRS only) makes the switch drive the clock-as-master output.
type AVBParamsEntry struct {
	DestMeta  uint64 `yaml:"destmeta" dump:"mac"`
	SrcMeta   uint64 `yaml:"srcmeta" dump:"mac"`
	CASMaster uint64 `yaml:"cas_master,omitempty"`
}

func (*AVBParamsEntry) BlockID() format.BlockID { return format.BlockAVBParams }

func (e *AVBParamsEntry) Layout(f *packing.Fields, family format.Family) error {
	switch family {
	case format.FamilyET:
		f.Uint64(&e.DestMeta, 95, 48)
		f.Uint64(&e.SrcMeta, 47, 0)
	case format.FamilyPQRS:
		f.Uint64(&e.CASMaster, 126, 126)
		f.Uint64(&e.DestMeta, 125, 78)
		f.Uint64(&e.SrcMeta, 77, 30)
	default:
		return unsupported(format.BlockAVBParams, family)
	}

	return f.Err()
}
