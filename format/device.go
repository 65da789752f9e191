package format

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DeviceID is the 32-bit device identifier stored at the start of every static configuration.
type DeviceID uint32

// PartNumber distinguishes the members of a family sharing one device id.
type PartNumber uint16

const (
	DeviceIDSJA1105E  DeviceID = 0x9C00000C
	DeviceIDSJA1105T  DeviceID = 0x9E00030E
	DeviceIDSJA1105PR DeviceID = 0xAF00030E
	DeviceIDSJA1105QS DeviceID = 0xAE00030E
	DeviceIDNone      DeviceID = 0x00000000

	PartNumberSJA1105P PartNumber = 0x9A84
	PartNumberSJA1105Q PartNumber = 0x9A85
	PartNumberSJA1105R PartNumber = 0x9A86
	PartNumberSJA1105S PartNumber = 0x9A87
	PartNumberUnknown  PartNumber = 0
)

// Family is one of the two generations of the chip. Several tables have
// different bit layouts, and different field sets, between families.
type Family uint8

const (
	FamilyUnknown Family = iota
	// FamilyET covers SJA1105E and SJA1105T.
	FamilyET
	// FamilyPQRS covers SJA1105P, SJA1105Q, SJA1105R and SJA1105S.
	FamilyPQRS
)

func (f Family) String() string {
	switch f {
	case FamilyET:
		return "ET"
	case FamilyPQRS:
		return "PQRS"
	default:
		return "Unknown"
	}
}

// Family returns the device family for the id, or FamilyUnknown.
func (id DeviceID) Family() Family {
	switch id {
	case DeviceIDSJA1105E, DeviceIDSJA1105T:
		return FamilyET
	case DeviceIDSJA1105PR, DeviceIDSJA1105QS:
		return FamilyPQRS
	default:
		return FamilyUnknown
	}
}

func (id DeviceID) String() string {
	switch id {
	case DeviceIDSJA1105E:
		return "SJA1105E"
	case DeviceIDSJA1105T:
		return "SJA1105T"
	case DeviceIDSJA1105PR:
		return "SJA1105P/R"
	case DeviceIDSJA1105QS:
		return "SJA1105Q/S"
	default:
		return fmt.Sprintf("device(0x%08x)", uint32(id))
	}
}

// MarshalYAML renders the id as a hex integer.
func (id DeviceID) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("0x%08X", uint32(id))}, nil
}

// Variant returns the exact chip name for a device id and part number pair.
// The part number is only consulted for the PQRS family, where two parts share
// each device id. An empty string is returned when the pair is inconsistent.
func Variant(id DeviceID, part PartNumber) string {
	switch id {
	case DeviceIDSJA1105E, DeviceIDSJA1105T:
		return id.String()
	case DeviceIDSJA1105PR:
		switch part {
		case PartNumberSJA1105P:
			return "SJA1105P"
		case PartNumberSJA1105R:
			return "SJA1105R"
		case PartNumberUnknown:
			return id.String()
		}
	case DeviceIDSJA1105QS:
		switch part {
		case PartNumberSJA1105Q:
			return "SJA1105Q"
		case PartNumberSJA1105S:
			return "SJA1105S"
		case PartNumberUnknown:
			return id.String()
		}
	}

	return ""
}

// HasSGMII reports whether the part has the SGMII port (R and S only).
// With an unknown part number the answer is optimistic for the PQRS family.
func HasSGMII(id DeviceID, part PartNumber) bool {
	if id.Family() != FamilyPQRS {
		return false
	}

	switch part {
	case PartNumberSJA1105R, PartNumberSJA1105S, PartNumberUnknown:
		return true
	default:
		return false
	}
}
