package packing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sja1105/errs"
)

func TestFields_Walk(t *testing.T) {
	engine := NewEngine(QuirkLSW32IsFirst)
	buf := make([]byte, 12)

	a, b := uint64(0x5), uint64(0x3FF)
	arr := []uint64{1, 2, 3, 4}

	w := NewFields(engine, buf, Pack)
	w.Uint64(&a, 95, 93)
	w.Uint64(&b, 92, 83)
	w.Array(arr, 10, 10, 10)
	require.NoError(t, w.Err())
	require.Equal(t, Pack, w.Direction())
	require.Equal(t, 12, w.Len())

	var ga, gb uint64
	garr := make([]uint64, 4)
	r := NewFields(engine, buf, Unpack)
	r.Uint64(&ga, 95, 93)
	r.Uint64(&gb, 92, 83)
	r.Array(garr, 10, 10, 10)
	require.NoError(t, r.Err())

	require.Equal(t, a, ga)
	require.Equal(t, b, gb)
	require.Equal(t, arr, garr)
}

func TestFields_StopsAtFirstError(t *testing.T) {
	buf := make([]byte, 4)
	first, second := uint64(1), uint64(1)

	w := NewFields(DefaultEngine(), buf, Pack)
	w.Uint64(&first, 40, 33)
	w.Uint64(&second, 0, 0)

	require.ErrorIs(t, w.Err(), errs.ErrOutOfRange)
	require.Equal(t, make([]byte, 4), buf)
}
