package table

import (
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// GeneralParamsEntry holds switch-wide settings: management traffic filters,
// host and cascade ports, mirroring and the TPIDs.
//
// QueueTS, EgrMirrVID, EgrMirrPCP, EgrMirrDEI and ReplayPort exist on PQRS
// only; the rest of the PQRS layout is the ET layout shifted up by 32 bits.
type GeneralParamsEntry struct {
	VLLupFormat uint64 `yaml:"vllupformat"`
	MirrPtAcu   uint64 `yaml:"mirr_ptacu"`
	SwitchID    uint64 `yaml:"switchid"`
	HostPrio    uint64 `yaml:"hostprio"`
	MACFltRes1  uint64 `yaml:"mac_fltres1" dump:"mac"`
	MACFltRes0  uint64 `yaml:"mac_fltres0" dump:"mac"`
	MACFlt1     uint64 `yaml:"mac_flt1" dump:"mac"`
	MACFlt0     uint64 `yaml:"mac_flt0" dump:"mac"`
	InclSrcPt1  uint64 `yaml:"incl_srcpt1"`
	InclSrcPt0  uint64 `yaml:"incl_srcpt0"`
	SendMeta1   uint64 `yaml:"send_meta1"`
	SendMeta0   uint64 `yaml:"send_meta0"`
	CascPort    uint64 `yaml:"casc_port"`
	HostPort    uint64 `yaml:"host_port"`
	MirrPort    uint64 `yaml:"mirr_port"`
	VLMarker    uint64 `yaml:"vlmarker"`
	VLMask      uint64 `yaml:"vlmask"`
	TPID        uint64 `yaml:"tpid"`
	Ignore2Stf  uint64 `yaml:"ignore2stf"`
	TPID2       uint64 `yaml:"tpid2"`

	// PQRS only
	QueueTS    uint64 `yaml:"queue_ts,omitempty"`
	EgrMirrVID uint64 `yaml:"egrmirrvid,omitempty"`
	EgrMirrPCP uint64 `yaml:"egrmirrpcp,omitempty"`
	EgrMirrDEI uint64 `yaml:"egrmirrdei,omitempty"`
	ReplayPort uint64 `yaml:"replay_port,omitempty"`
}

func (*GeneralParamsEntry) BlockID() format.BlockID { return format.BlockGeneralParams }

// VLLookupFormat returns the interpretation of the VL lookup table selected by the entry.
func (e *GeneralParamsEntry) VLLookupFormat() VLLookupFormat {
	return VLLookupFormat(e.VLLupFormat)
}

func (e *GeneralParamsEntry) Layout(f *packing.Fields, family format.Family) error {
	switch family {
	case format.FamilyET:
		e.common(f, 0)
	case format.FamilyPQRS:
		e.common(f, 32)
		f.Uint64(&e.QueueTS, 41, 41)
		f.Uint64(&e.EgrMirrVID, 40, 29)
		f.Uint64(&e.EgrMirrPCP, 28, 26)
		f.Uint64(&e.EgrMirrDEI, 25, 25)
		f.Uint64(&e.ReplayPort, 24, 22)
	default:
		return unsupported(format.BlockGeneralParams, family)
	}

	return f.Err()
}

// common walks the fields shared by both families, shifted up by off bits.
func (e *GeneralParamsEntry) common(f *packing.Fields, off int) {
	f.Uint64(&e.VLLupFormat, off+319, off+319)
	f.Uint64(&e.MirrPtAcu, off+318, off+318)
	f.Uint64(&e.SwitchID, off+317, off+315)
	f.Uint64(&e.HostPrio, off+314, off+312)
	f.Uint64(&e.MACFltRes1, off+311, off+264)
	f.Uint64(&e.MACFltRes0, off+263, off+216)
	f.Uint64(&e.MACFlt1, off+215, off+168)
	f.Uint64(&e.MACFlt0, off+167, off+120)
	f.Uint64(&e.InclSrcPt1, off+119, off+119)
	f.Uint64(&e.InclSrcPt0, off+118, off+118)
	f.Uint64(&e.SendMeta1, off+117, off+117)
	f.Uint64(&e.SendMeta0, off+116, off+116)
	f.Uint64(&e.CascPort, off+115, off+113)
	f.Uint64(&e.HostPort, off+112, off+110)
	f.Uint64(&e.MirrPort, off+109, off+107)
	f.Uint64(&e.VLMarker, off+106, off+75)
	f.Uint64(&e.VLMask, off+74, off+43)
	f.Uint64(&e.TPID, off+42, off+27)
	f.Uint64(&e.Ignore2Stf, off+26, off+26)
	f.Uint64(&e.TPID2, off+25, off+10)
}
