package packing

// Fields walks the field list of one table entry over a single buffer.
//
// The first error is recorded and every later call becomes a no-op, so a
// layout can be written as a flat list of calls followed by one Err check.
// Because the span checks run before any byte is touched, a walk that fails
// leaves the buffer with only the fields preceding the failing one written.
type Fields struct {
	engine Engine
	buf    []byte
	dir    Direction
	err    error
}

// NewFields creates a field walker over buf.
func NewFields(engine Engine, buf []byte, dir Direction) *Fields {
	return &Fields{engine: engine, buf: buf, dir: dir}
}

// Direction returns the walk direction.
func (f *Fields) Direction() Direction {
	return f.dir
}

// Len returns the length of the underlying buffer.
func (f *Fields) Len() int {
	return len(f.buf)
}

// Uint64 moves the (hi, lo) field to or from *v.
func (f *Fields) Uint64(v *uint64, hi, lo int) {
	if f.err != nil {
		return
	}

	f.err = f.engine.Packing(f.buf, v, hi, lo, f.dir)
}

// Array moves len(vs) fields of the given width laid out from bit base
// upwards, element i starting at base+i*stride.
func (f *Fields) Array(vs []uint64, base, stride, width int) {
	for i := range vs {
		lo := base + i*stride
		f.Uint64(&vs[i], lo+width-1, lo)
	}
}

// Err returns the first error seen by the walk.
func (f *Fields) Err() error {
	return f.err
}
