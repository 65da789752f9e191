package table

import (
	"math/bits"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

var families = []format.Family{format.FamilyET, format.FamilyPQRS}

// newEntries returns one zero entry of every table kind, both VL lookup variants included.
func newEntries() []Entry {
	return []Entry{
		&ScheduleEntry{},
		&ScheduleEntryPointsEntry{},
		&VLLookupPSFP{},
		&VLLookupCritical{},
		&VLPolicingEntry{},
		&VLForwardingEntry{},
		&L2LookupEntry{},
		&L2PolicingEntry{},
		&VLANLookupEntry{},
		&L2ForwardingEntry{},
		&MACConfigEntry{},
		&ScheduleParamsEntry{},
		&ScheduleEntryPointsParamsEntry{},
		&VLForwardingParamsEntry{},
		&L2LookupParamsEntry{},
		&L2ForwardingParamsEntry{},
		&ClockSyncParamsEntry{},
		&AVBParamsEntry{},
		&GeneralParamsEntry{},
		&RetaggingEntry{},
		&XMIIModeParamsEntry{},
		&SGMIIEntry{},
	}
}

// fieldBits sums the set bits of every uint64 field of an entry.
func fieldBits(e Entry) int {
	v := reflect.ValueOf(e).Elem()
	n := 0
	for i := 0; i < v.NumField(); i++ {
		fv := v.Field(i)
		switch fv.Kind() { //nolint: exhaustive
		case reflect.Uint64:
			n += bits.OnesCount64(fv.Uint())
		case reflect.Array:
			for j := 0; j < fv.Len(); j++ {
				n += bits.OnesCount64(fv.Index(j).Uint())
			}
		}
	}

	return n
}

func bufBits(buf []byte) int {
	n := 0
	for _, b := range buf {
		n += bits.OnesCount8(b)
	}

	return n
}

func fresh(e Entry) Entry {
	return reflect.New(reflect.TypeOf(e).Elem()).Interface().(Entry)
}

func TestKinds(t *testing.T) {
	all := Kinds()
	require.Len(t, all, 21)

	for i := 1; i < len(all); i++ {
		require.Less(t, all[i-1].BlockID, all[i].BlockID)
	}

	for _, k := range all {
		require.True(t, k.BlockID.Known(), "block %s", k.BlockID)
		require.Positive(t, k.MaxCount)
		require.Zero(t, k.SizeET%4, "%s ET size", k.BlockID)
		require.Zero(t, k.SizePQRS%4, "%s PQRS size", k.BlockID)
	}

	k, ok := LookupKind(format.BlockMACConfig)
	require.True(t, ok)
	require.Equal(t, 28, k.Size(format.FamilyET))
	require.Equal(t, 32, k.Size(format.FamilyPQRS))
	require.Equal(t, 0, k.Size(format.FamilyUnknown))
	require.Equal(t, 0, Size(format.BlockSGMII, format.FamilyET))

	_, ok = LookupKind(0x77)
	require.False(t, ok)
}

func TestEntries_FieldsDoNotOverlap(t *testing.T) {
	for _, family := range families {
		for _, proto := range newEntries() {
			size := Size(proto.BlockID(), family)
			if size == 0 {
				continue
			}

			t.Run(family.String()+"/"+reflect.TypeOf(proto).Elem().Name(), func(t *testing.T) {
				engine := packing.NewEngine(packing.QuirkLSW32IsFirst)

				ones := make([]byte, size)
				for i := range ones {
					ones[i] = 0xFF
				}

				full := fresh(proto)
				require.NoError(t, Unpack(engine, family, ones, full))

				buf := make([]byte, size)
				require.NoError(t, Pack(engine, family, buf, full))
				require.Equal(t, fieldBits(full), bufBits(buf), "fields overlap")

				back := fresh(proto)
				require.NoError(t, Unpack(engine, family, buf, back))
				require.Equal(t, full, back)
			})
		}
	}
}

func TestEntries_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, q := range packing.AllQuirkCombinations() {
		engine := packing.NewEngine(q)
		for _, family := range families {
			for _, proto := range newEntries() {
				size := Size(proto.BlockID(), family)
				if size == 0 {
					continue
				}

				noise := make([]byte, size)
				rng.Read(noise)

				first := fresh(proto)
				require.NoError(t, Unpack(engine, family, noise, first))

				buf := make([]byte, size)
				require.NoError(t, Pack(engine, family, buf, first))

				second := fresh(proto)
				require.NoError(t, Unpack(engine, family, buf, second))
				require.Equal(t, first, second, "%s %s %s", q, family, proto.BlockID())
			}
		}
	}
}

func TestMACConfig_SpeedBits(t *testing.T) {
	engine := packing.DefaultEngine()

	t.Run("ET", func(t *testing.T) {
		buf := make([]byte, 28)
		require.NoError(t, Pack(engine, format.FamilyET, buf, &MACConfigEntry{Speed: Speed100M}))
		// bits 66:65 = 0b10 -> bit 66 -> logical byte 8, bit 2
		require.Equal(t, byte(0x04), buf[28-8-1])
		require.Equal(t, 1, bufBits(buf))
	})

	t.Run("PQRS", func(t *testing.T) {
		buf := make([]byte, 32)
		require.NoError(t, Pack(engine, format.FamilyPQRS, buf, &MACConfigEntry{Speed: Speed100M}))
		// bits 98:97 = 0b10 -> bit 98 -> logical byte 12, bit 2
		require.Equal(t, byte(0x04), buf[32-12-1])
		require.Equal(t, 1, bufBits(buf))
	})
}

func TestVLLookup_VariantsShareBits(t *testing.T) {
	engine := packing.DefaultEngine()
	buf := make([]byte, 12)

	psfp := &VLLookupPSFP{
		DestPorts: 0x1F,
		MACAddr:   0x0180C200000E,
		VLANID:    100,
		Port:      3,
		VLANPrior: 5,
	}
	require.NoError(t, Pack(engine, format.FamilyET, buf, psfp))

	crit := &VLLookupCritical{}
	require.NoError(t, Unpack(engine, format.FamilyET, buf, crit))
	require.Equal(t, uint64(0x1F), crit.EgrMirr)
	require.Equal(t, psfp.MACAddr&0xFFFF, crit.VLID)
	require.Equal(t, psfp.Port, crit.Port)
}

func TestNewVLLookupEntry(t *testing.T) {
	e, err := NewVLLookupEntry(VLLookupFormatPSFP)
	require.NoError(t, err)
	require.IsType(t, &VLLookupPSFP{}, e)
	require.Equal(t, VLLookupFormatPSFP, e.Format())

	e, err = NewVLLookupEntry(VLLookupFormatCritical)
	require.NoError(t, err)
	require.IsType(t, &VLLookupCritical{}, e)
	require.Equal(t, "critical", e.Format().String())

	_, err = NewVLLookupEntry(7)
	require.ErrorIs(t, err, errs.ErrInvalidVLFormat)
}

func TestVLPolicing_TypeSelectsFields(t *testing.T) {
	engine := packing.DefaultEngine()
	buf := make([]byte, 8)

	require.NoError(t, Pack(engine, format.FamilyET, buf, &VLPolicingEntry{Type: 1, MaxLen: 1518, BAG: 77, Jitter: 5}))

	got := &VLPolicingEntry{}
	require.NoError(t, Unpack(engine, format.FamilyET, buf, got))
	require.Equal(t, &VLPolicingEntry{Type: 1, MaxLen: 1518}, got)
}

func TestVLPolicing_Check(t *testing.T) {
	tests := []struct {
		name  string
		entry VLPolicingEntry
		ok    bool
	}{
		{"rate constrained with bag", VLPolicingEntry{Type: 0, BAG: 77, Jitter: 5}, true},
		{"time triggered plain", VLPolicingEntry{Type: 1, MaxLen: 1518}, true},
		{"time triggered with bag", VLPolicingEntry{Type: 1, BAG: 77}, false},
		{"time triggered with jitter", VLPolicingEntry{Type: 1, Jitter: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ch Checker = &tt.entry
			if tt.ok {
				require.NoError(t, ch.Check())
			} else {
				require.ErrorIs(t, ch.Check(), errs.ErrInvalidField)
			}
		})
	}
}

func TestPack_Errors(t *testing.T) {
	engine := packing.DefaultEngine()

	t.Run("Table missing in family", func(t *testing.T) {
		err := Pack(engine, format.FamilyET, make([]byte, 144), &SGMIIEntry{})
		require.ErrorIs(t, err, errs.ErrUnsupportedTable)
	})

	t.Run("Unknown family", func(t *testing.T) {
		err := Pack(engine, format.FamilyUnknown, make([]byte, 8), &ScheduleEntry{})
		require.ErrorIs(t, err, errs.ErrUnsupportedTable)
	})

	t.Run("Wrong buffer size", func(t *testing.T) {
		err := Unpack(engine, format.FamilyPQRS, make([]byte, 28), &MACConfigEntry{})
		require.ErrorIs(t, err, errs.ErrInvalidEntrySize)
	})
}

func TestGeneralParams_FamilyFieldSets(t *testing.T) {
	engine := packing.DefaultEngine()
	e := &GeneralParamsEntry{HostPort: 4, ReplayPort: 7, EgrMirrVID: 99}

	et := make([]byte, 40)
	require.NoError(t, Pack(engine, format.FamilyET, et, e))
	gotET := &GeneralParamsEntry{}
	require.NoError(t, Unpack(engine, format.FamilyET, et, gotET))
	require.Equal(t, &GeneralParamsEntry{HostPort: 4}, gotET)

	pqrs := make([]byte, 44)
	require.NoError(t, Pack(engine, format.FamilyPQRS, pqrs, e))
	gotPQRS := &GeneralParamsEntry{}
	require.NoError(t, Unpack(engine, format.FamilyPQRS, pqrs, gotPQRS))
	require.Equal(t, e, gotPQRS)
}
