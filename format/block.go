package format

import "fmt"

// BlockID is the numeric tag identifying a table kind in the static configuration image.
//
// The values are fixed by the chip and must not change.
type BlockID uint8

const (
	BlockSchedule                  BlockID = 0x00
	BlockScheduleEntryPoints       BlockID = 0x01
	BlockVLLookup                  BlockID = 0x02
	BlockVLPolicing                BlockID = 0x03
	BlockVLForwarding              BlockID = 0x04
	BlockL2Lookup                  BlockID = 0x05
	BlockL2Policing                BlockID = 0x06
	BlockVLANLookup                BlockID = 0x07
	BlockL2Forwarding              BlockID = 0x08
	BlockMACConfig                 BlockID = 0x09
	BlockScheduleParams            BlockID = 0x0A
	BlockScheduleEntryPointsParams BlockID = 0x0B
	BlockVLForwardingParams        BlockID = 0x0C
	BlockL2LookupParams            BlockID = 0x0D
	BlockL2ForwardingParams        BlockID = 0x0E
	BlockClockSyncParams           BlockID = 0x0F
	BlockAVBParams                 BlockID = 0x10
	BlockGeneralParams             BlockID = 0x11
	BlockRetagging                 BlockID = 0x12
	BlockXMIIModeParams            BlockID = 0x4E
	BlockSGMII                     BlockID = 0xC8
)

var blockNames = map[BlockID]string{
	BlockSchedule:                  "schedule",
	BlockScheduleEntryPoints:       "schedule-entry-points",
	BlockVLLookup:                  "vl-lookup",
	BlockVLPolicing:                "vl-policing",
	BlockVLForwarding:              "vl-forwarding",
	BlockL2Lookup:                  "l2-lookup",
	BlockL2Policing:                "l2-policing",
	BlockVLANLookup:                "vlan-lookup",
	BlockL2Forwarding:              "l2-forwarding",
	BlockMACConfig:                 "mac-config",
	BlockScheduleParams:            "schedule-params",
	BlockScheduleEntryPointsParams: "schedule-entry-points-params",
	BlockVLForwardingParams:        "vl-forwarding-params",
	BlockL2LookupParams:            "l2-lookup-params",
	BlockL2ForwardingParams:        "l2-forwarding-params",
	BlockClockSyncParams:           "clock-sync-params",
	BlockAVBParams:                 "avb-params",
	BlockGeneralParams:             "general-params",
	BlockRetagging:                 "retagging",
	BlockXMIIModeParams:            "xmii-mode-params",
	BlockSGMII:                     "sgmii",
}

// Known reports whether id is one of the chip's table block ids.
func (id BlockID) Known() bool {
	_, ok := blockNames[id]
	return ok
}

func (id BlockID) String() string {
	if name, ok := blockNames[id]; ok {
		return name
	}

	return fmt.Sprintf("block(0x%02x)", uint8(id))
}
