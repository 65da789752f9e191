package staticconfig

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sja1105/checksum"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
	"github.com/arloliu/sja1105/section"
	"github.com/arloliu/sja1105/table"
)

func deviceFor(family format.Family) format.DeviceID {
	if family == format.FamilyPQRS {
		return format.DeviceIDSJA1105QS
	}

	return format.DeviceIDSJA1105T
}

// sampleConfig builds a configuration touching several table kinds, with the
// VL lookup table in the requested format.
func sampleConfig(family format.Family, vl table.VLLookupFormat) *StaticConfig {
	cfg := &StaticConfig{DeviceID: deviceFor(family)}

	cfg.Schedule = []table.ScheduleEntry{
		{WinStIndex: 1, WinSt: 1, DestPorts: 0x1F, SetValid: 1, TxEn: 1, VLIndex: 7, Delta: 2000},
		{WinStIndex: 2, WinEnd: 1, DestPorts: 0x03, ResMediaEn: 1, ResMedia: 0x80, Delta: 125000},
	}

	cfg.L2Lookup = []table.L2LookupEntry{
		{VLANID: 1, MACAddr: 0x0180C200000E, DestPorts: 0x10, EnfPort: 1, Index: 0},
		{VLANID: 100, MACAddr: 0x001122334455, DestPorts: 0x01, Index: 1},
	}
	if family == format.FamilyPQRS {
		cfg.L2Lookup[0].MaskVLANID = 0xFFF
		cfg.L2Lookup[0].MaskMACAddr = 0xFFFFFFFFFFFF
		cfg.L2Lookup[1].IOTag = 1
	}

	cfg.MACConfig = make([]table.MACConfigEntry, 5)
	for i := range cfg.MACConfig {
		m := &cfg.MACConfig[i]
		m.Speed = table.Speed1G
		m.Ingress, m.Egress = 1, 1
		m.VLANID = 1
		for q := 0; q < 8; q++ {
			m.Enabled[q] = 1
			m.Base[q] = uint64(q * 63)
			m.Top[q] = uint64(q*63 + 62)
		}
	}

	general := table.GeneralParamsEntry{
		VLLupFormat: uint64(vl),
		HostPort:    4,
		MirrPort:    3,
		CascPort:    5,
		MACFltRes0:  0x0180C2000000,
		MACFlt0:     0xFFFFFF000000,
		TPID:        0x88A8,
		TPID2:       0x8100,
	}
	if family == format.FamilyPQRS {
		general.ReplayPort = 7
		general.EgrMirrVID = 42
	}
	cfg.GeneralParams = []table.GeneralParamsEntry{general}

	switch vl {
	case table.VLLookupFormatCritical:
		cfg.VLLookup = []table.VLLookupEntry{
			&table.VLLookupCritical{EgrMirr: 0x02, VLID: 0x1234, Port: 1},
			&table.VLLookupCritical{IngrMirr: 1, VLID: 0x0001, Port: 4},
		}
	default:
		cfg.VLLookup = []table.VLLookupEntry{
			&table.VLLookupPSFP{DestPorts: 0x1F, MACAddr: 0x01005E000001, VLANID: 10, Port: 2, VLANPrior: 6},
			&table.VLLookupPSFP{IsCritical: 1, MACAddr: 0x01005E000002, VLANID: 11, Port: 3},
		}
	}

	cfg.XMIIModeParams = []table.XMIIModeParamsEntry{{
		XMIIMode: [5]uint64{table.XMIIModeRGMII, table.XMIIModeRGMII, table.XMIIModeRMII, table.XMIIModeMII, table.XMIIModeRGMII},
		PHYMAC:   [5]uint64{0, 0, 1, 1, 0},
	}}

	return cfg
}

type rawTable struct {
	id   format.BlockID
	body []byte
	// words overrides the header length when non-zero.
	words uint32
}

// buildImage frames raw table bodies into an image without any validation.
func buildImage(t *testing.T, engine packing.Engine, id format.DeviceID, tables ...rawTable) []byte {
	t.Helper()

	image := make([]byte, section.DeviceIDSize)
	require.NoError(t, section.PackDeviceID(engine, image, id))

	for _, tbl := range tables {
		hdr := section.TableHeader{BlockID: tbl.id, Len: uint32(len(tbl.body) / section.WordSize)}
		if tbl.words != 0 {
			hdr.Len = tbl.words
		}

		hb := make([]byte, section.TableHeaderSize)
		require.NoError(t, hdr.PackWithCRC(engine, hb))
		image = append(image, hb...)
		image = append(image, tbl.body...)

		crc := make([]byte, section.TableCRCSize)
		require.NoError(t, engine.PutUint32(crc, checksum.CRC32(engine, tbl.body)))
		image = append(image, crc...)
	}

	term, err := section.TableHeader{}.Bytes(engine)
	require.NoError(t, err)

	return append(image, term...)
}

// packEntries packs entries back to back for a family.
func packEntries(t *testing.T, engine packing.Engine, family format.Family, entries ...table.Entry) []byte {
	t.Helper()

	var body []byte
	for _, e := range entries {
		buf := make([]byte, table.Size(e.BlockID(), family))
		require.NoError(t, table.Pack(engine, family, buf, e))
		body = append(body, buf...)
	}

	return body
}

func newAssembler(t *testing.T, opts ...Option) *Assembler {
	t.Helper()

	a, err := NewAssembler(opts...)
	require.NoError(t, err)

	return a
}

func newParser(t *testing.T, opts ...Option) *Parser {
	t.Helper()

	p, err := NewParser(opts...)
	require.NoError(t, err)

	return p
}
