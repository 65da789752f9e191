package table

import (
	"fmt"
	"sort"

	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// Kind describes the fixed properties of one table kind.
type Kind struct {
	BlockID format.BlockID
	// SizeET and SizePQRS are the entry sizes in bytes; 0 means the family has no such table.
	SizeET   int
	SizePQRS int
	// MaxCount is the number of entries the chip can hold.
	MaxCount int
}

// Size returns the entry size for a family, 0 if the table does not exist there.
func (k Kind) Size(family format.Family) int {
	switch family {
	case format.FamilyET:
		return k.SizeET
	case format.FamilyPQRS:
		return k.SizePQRS
	default:
		return 0
	}
}

var kinds = map[format.BlockID]Kind{
	format.BlockSchedule:                  {format.BlockSchedule, 8, 8, 1024},
	format.BlockScheduleEntryPoints:       {format.BlockScheduleEntryPoints, 4, 4, 2048},
	format.BlockVLLookup:                  {format.BlockVLLookup, 12, 12, 1024},
	format.BlockVLPolicing:                {format.BlockVLPolicing, 8, 8, 1024},
	format.BlockVLForwarding:              {format.BlockVLForwarding, 4, 4, 1024},
	format.BlockL2Lookup:                  {format.BlockL2Lookup, 12, 20, 1024},
	format.BlockL2Policing:                {format.BlockL2Policing, 8, 8, 45},
	format.BlockVLANLookup:                {format.BlockVLANLookup, 8, 8, 4096},
	format.BlockL2Forwarding:              {format.BlockL2Forwarding, 8, 8, 13},
	format.BlockMACConfig:                 {format.BlockMACConfig, 28, 32, 5},
	format.BlockScheduleParams:            {format.BlockScheduleParams, 12, 12, 1},
	format.BlockScheduleEntryPointsParams: {format.BlockScheduleEntryPointsParams, 4, 4, 1},
	format.BlockVLForwardingParams:        {format.BlockVLForwardingParams, 12, 12, 1},
	format.BlockL2LookupParams:            {format.BlockL2LookupParams, 4, 16, 1},
	format.BlockL2ForwardingParams:        {format.BlockL2ForwardingParams, 12, 12, 1},
	format.BlockClockSyncParams:           {format.BlockClockSyncParams, 52, 52, 1},
	format.BlockAVBParams:                 {format.BlockAVBParams, 12, 16, 1},
	format.BlockGeneralParams:             {format.BlockGeneralParams, 40, 44, 1},
	format.BlockRetagging:                 {format.BlockRetagging, 8, 8, 32},
	format.BlockXMIIModeParams:            {format.BlockXMIIModeParams, 4, 4, 1},
	format.BlockSGMII:                     {format.BlockSGMII, 0, 144, 1},
}

// LookupKind returns the kind registered for a block id.
func LookupKind(id format.BlockID) (Kind, bool) {
	k, ok := kinds[id]
	return k, ok
}

// Kinds returns all table kinds ordered by block id.
func Kinds() []Kind {
	all := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		all = append(all, k)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].BlockID < all[j].BlockID })

	return all
}

// Size returns the entry size of a table kind in a family, 0 if unknown or unsupported.
func Size(id format.BlockID, family format.Family) int {
	return kinds[id].Size(family)
}

// Entry is one row of a static configuration table.
type Entry interface {
	// BlockID returns the table kind the entry belongs to.
	BlockID() format.BlockID
	// Layout walks the entry's fields for the given family.
	Layout(f *packing.Fields, family format.Family) error
}

// Checker is implemented by entries whose field values depend on each other
// in ways a plain bit width cannot express.
type Checker interface {
	Check() error
}

// Pack writes e into buf, which must be exactly the entry size for the family.
// buf is expected to be zeroed; bits outside the entry's fields are left untouched.
func Pack(engine packing.Engine, family format.Family, buf []byte, e Entry) error {
	return walk(engine, family, buf, e, packing.Pack)
}

// Unpack reads e from buf, which must be exactly the entry size for the family.
func Unpack(engine packing.Engine, family format.Family, buf []byte, e Entry) error {
	return walk(engine, family, buf, e, packing.Unpack)
}

func walk(engine packing.Engine, family format.Family, buf []byte, e Entry, dir packing.Direction) error {
	id := e.BlockID()

	size := Size(id, family)
	if size == 0 {
		return fmt.Errorf("%w: %s in family %s", errs.ErrUnsupportedTable, id, family)
	}

	if len(buf) != size {
		return fmt.Errorf("%w: %s entry is %d bytes in family %s, buffer has %d",
			errs.ErrInvalidEntrySize, id, size, family, len(buf))
	}

	f := packing.NewFields(engine, buf, dir)
	if err := e.Layout(f, family); err != nil {
		return fmt.Errorf("%s %s: %w", dir, id, err)
	}

	return nil
}

func unsupported(id format.BlockID, family format.Family) error {
	return fmt.Errorf("%w: %s in family %s", errs.ErrUnsupportedTable, id, family)
}
