package table

import (
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// ClockSyncParamsEntry holds the AS6802 clock synchronization parameters.
// Durations are in units of the synchronization clock.
type ClockSyncParamsEntry struct {
	ETSSrcPCF     uint64 `yaml:"etssrcpcf" dump:"mac"`
	WaitThSync    uint64 `yaml:"waitthsync"`
	WFIntMOut     uint64 `yaml:"wfintmout"`
	UnsyToTsyTh   uint64 `yaml:"unsytotsyth"`
	UnsyToSyTh    uint64 `yaml:"unsytosyth"`
	TsyToSyTh     uint64 `yaml:"tsytosyth"`
	TsyTh         uint64 `yaml:"tsyth"`
	TsyToUsyTh    uint64 `yaml:"tsytousyth"`
	SyTh          uint64 `yaml:"syth"`
	SyToUsyTh     uint64 `yaml:"sytousyth"`
	SyPriority    uint64 `yaml:"sypriority"`
	SyDomain      uint64 `yaml:"sydomain"`
	VLIDOut       uint64 `yaml:"vlidout"`
	VLIDInMin     uint64 `yaml:"vlidimnmin"`
	VLIDInMax     uint64 `yaml:"vlidinmax"`
	CAEnTmOut     uint64 `yaml:"caentmout"`
	AccDevWin     uint64 `yaml:"accdevwin"`
	VLIDSelect    uint64 `yaml:"vlidselect"`
	TentSyRelen   uint64 `yaml:"tentsyrelen"`
	ASyTenSyRelen uint64 `yaml:"asytensyrelen"`
	MaxTransPClk  uint64 `yaml:"maxtranspclk"`
	PCFSze        uint64 `yaml:"pcfsze"`
	OBVWinSz      uint64 `yaml:"obvwinsz"`
	NumMstr       uint64 `yaml:"nummstr"`
	IntCyCDur     uint64 `yaml:"intcycdur"`
	SrcPort       uint64 `yaml:"srcport"`
	SMM           uint64 `yaml:"smm"`
}

func (*ClockSyncParamsEntry) BlockID() format.BlockID { return format.BlockClockSyncParams }

func (e *ClockSyncParamsEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.ETSSrcPCF, 415, 368)
	f.Uint64(&e.WaitThSync, 367, 364)
	f.Uint64(&e.WFIntMOut, 363, 346)
	f.Uint64(&e.UnsyToTsyTh, 345, 341)
	f.Uint64(&e.UnsyToSyTh, 340, 336)
	f.Uint64(&e.TsyToSyTh, 335, 331)
	f.Uint64(&e.TsyTh, 330, 326)
	f.Uint64(&e.TsyToUsyTh, 325, 321)
	f.Uint64(&e.SyTh, 320, 316)
	f.Uint64(&e.SyToUsyTh, 315, 311)
	f.Uint64(&e.SyPriority, 310, 303)
	f.Uint64(&e.SyDomain, 302, 295)
	f.Uint64(&e.VLIDOut, 294, 279)
	f.Uint64(&e.VLIDInMin, 278, 263)
	f.Uint64(&e.VLIDInMax, 262, 247)
	f.Uint64(&e.CAEnTmOut, 246, 229)
	f.Uint64(&e.AccDevWin, 228, 211)
	f.Uint64(&e.VLIDSelect, 210, 210)
	f.Uint64(&e.TentSyRelen, 209, 209)
	f.Uint64(&e.ASyTenSyRelen, 208, 208)
	f.Uint64(&e.MaxTransPClk, 207, 188)
	f.Uint64(&e.PCFSze, 187, 181)
	f.Uint64(&e.OBVWinSz, 180, 161)
	f.Uint64(&e.NumMstr, 160, 155)
	f.Uint64(&e.IntCyCDur, 154, 125)
	f.Uint64(&e.SrcPort, 124, 120)
	f.Uint64(&e.SMM, 119, 119)

	return f.Err()
}
