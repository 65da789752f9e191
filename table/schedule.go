package table

import (
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// ScheduleEntry is one window of the time-triggered schedule.
type ScheduleEntry struct {
	WinStIndex uint64 `yaml:"winstindex"`
	WinEnd     uint64 `yaml:"winend"`
	WinSt      uint64 `yaml:"winst"`
	DestPorts  uint64 `yaml:"destports"`
	SetValid   uint64 `yaml:"setvalid"`
	TxEn       uint64 `yaml:"txen"`
	ResMediaEn uint64 `yaml:"resmedia_en"`
	ResMedia   uint64 `yaml:"resmedia"`
	VLIndex    uint64 `yaml:"vlindex"`
	Delta      uint64 `yaml:"delta"`
}

func (*ScheduleEntry) BlockID() format.BlockID { return format.BlockSchedule }

func (e *ScheduleEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.WinStIndex, 63, 54)
	f.Uint64(&e.WinEnd, 53, 53)
	f.Uint64(&e.WinSt, 52, 52)
	f.Uint64(&e.DestPorts, 51, 47)
	f.Uint64(&e.SetValid, 46, 46)
	f.Uint64(&e.TxEn, 45, 45)
	f.Uint64(&e.ResMediaEn, 44, 44)
	f.Uint64(&e.ResMedia, 43, 36)
	f.Uint64(&e.VLIndex, 35, 26)
	f.Uint64(&e.Delta, 25, 8)

	return f.Err()
}

// ScheduleEntryPointsEntry points a subschedule at its first schedule entry.
type ScheduleEntryPointsEntry struct {
	SubSchIndx uint64 `yaml:"subschindx"`
	Delta      uint64 `yaml:"delta"`
	Address    uint64 `yaml:"address"`
}

func (*ScheduleEntryPointsEntry) BlockID() format.BlockID {
	return format.BlockScheduleEntryPoints
}

func (e *ScheduleEntryPointsEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.SubSchIndx, 31, 29)
	f.Uint64(&e.Delta, 28, 11)
	f.Uint64(&e.Address, 10, 1)

	return f.Err()
}

// ScheduleParamsEntry holds the last entry index of each of the 8 subschedules.
type ScheduleParamsEntry struct {
	SubSchEnd [8]uint64 `yaml:"subscheind,flow"`
}

func (*ScheduleParamsEntry) BlockID() format.BlockID { return format.BlockScheduleParams }

func (e *ScheduleParamsEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Array(e.SubSchEnd[:], 16, 10, 10)

	return f.Err()
}

type ScheduleEntryPointsParamsEntry struct {
	ClkSrc    uint64 `yaml:"clksrc"`
	ActSubSch uint64 `yaml:"actsubsch"`
}

func (*ScheduleEntryPointsParamsEntry) BlockID() format.BlockID {
	return format.BlockScheduleEntryPointsParams
}

func (e *ScheduleEntryPointsParamsEntry) Layout(f *packing.Fields, _ format.Family) error {
	f.Uint64(&e.ClkSrc, 31, 30)
	f.Uint64(&e.ActSubSch, 29, 27)

	return f.Err()
}
