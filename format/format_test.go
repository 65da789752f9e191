package format

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDeviceID_Family(t *testing.T) {
	tests := []struct {
		id     DeviceID
		family Family
		name   string
	}{
		{DeviceIDSJA1105E, FamilyET, "SJA1105E"},
		{DeviceIDSJA1105T, FamilyET, "SJA1105T"},
		{DeviceIDSJA1105PR, FamilyPQRS, "SJA1105P/R"},
		{DeviceIDSJA1105QS, FamilyPQRS, "SJA1105Q/S"},
		{DeviceIDNone, FamilyUnknown, "device(0x00000000)"},
		{0xDEADBEEF, FamilyUnknown, "device(0xdeadbeef)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.family, tt.id.Family())
			require.Equal(t, tt.name, tt.id.String())
		})
	}

	require.Equal(t, "ET", FamilyET.String())
	require.Equal(t, "PQRS", FamilyPQRS.String())
	require.Equal(t, "Unknown", FamilyUnknown.String())
}

func TestVariant(t *testing.T) {
	require.Equal(t, "SJA1105T", Variant(DeviceIDSJA1105T, PartNumberUnknown))
	require.Equal(t, "SJA1105P", Variant(DeviceIDSJA1105PR, PartNumberSJA1105P))
	require.Equal(t, "SJA1105R", Variant(DeviceIDSJA1105PR, PartNumberSJA1105R))
	require.Equal(t, "SJA1105Q", Variant(DeviceIDSJA1105QS, PartNumberSJA1105Q))
	require.Equal(t, "SJA1105S", Variant(DeviceIDSJA1105QS, PartNumberSJA1105S))
	require.Equal(t, "SJA1105Q/S", Variant(DeviceIDSJA1105QS, PartNumberUnknown))
	require.Empty(t, Variant(DeviceIDSJA1105PR, PartNumberSJA1105Q))
	require.Empty(t, Variant(0x1234, PartNumberUnknown))
}

func TestHasSGMII(t *testing.T) {
	require.False(t, HasSGMII(DeviceIDSJA1105T, PartNumberUnknown))
	require.False(t, HasSGMII(DeviceIDSJA1105PR, PartNumberSJA1105P))
	require.True(t, HasSGMII(DeviceIDSJA1105PR, PartNumberSJA1105R))
	require.False(t, HasSGMII(DeviceIDSJA1105QS, PartNumberSJA1105Q))
	require.True(t, HasSGMII(DeviceIDSJA1105QS, PartNumberSJA1105S))
	require.True(t, HasSGMII(DeviceIDSJA1105QS, PartNumberUnknown))
}

func TestDeviceID_YAML(t *testing.T) {
	out, err := yaml.Marshal(struct {
		ID DeviceID `yaml:"id"`
	}{DeviceIDSJA1105T})
	require.NoError(t, err)
	require.Equal(t, "id: 0x9E00030E\n", string(out))

	var back struct {
		ID DeviceID `yaml:"id"`
	}
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Equal(t, DeviceIDSJA1105T, back.ID)
}

func TestBlockID(t *testing.T) {
	require.True(t, BlockSchedule.Known())
	require.True(t, BlockSGMII.Known())
	require.False(t, BlockID(0x13).Known())

	require.Equal(t, "mac-config", BlockMACConfig.String())
	require.Equal(t, "xmii-mode-params", BlockXMIIModeParams.String())
	require.Equal(t, "block(0x13)", BlockID(0x13).String())
}

func TestCompressionType(t *testing.T) {
	for _, name := range []string{"none", "ZSTD", "s2", "Lz4", ""} {
		ct, ok := ParseCompressionType(name)
		require.True(t, ok, name)
		require.NotEqual(t, "Unknown", ct.String())
	}

	ct, ok := ParseCompressionType("zstd")
	require.True(t, ok)
	require.Equal(t, CompressionZstd, ct)

	_, ok = ParseCompressionType("gzip")
	require.False(t, ok)
	require.Equal(t, "Unknown", CompressionType(9).String())
}
