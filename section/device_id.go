package section

import (
	"fmt"

	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// PackDeviceID writes id into bits [31:0] of a 4-byte buffer.
func PackDeviceID(engine packing.Engine, buf []byte, id format.DeviceID) error {
	if len(buf) != DeviceIDSize {
		return fmt.Errorf("%w: device id needs %d bytes, have %d", errs.ErrInvalidEntrySize, DeviceIDSize, len(buf))
	}

	return engine.PutUint32(buf, uint32(id))
}

// ParseDeviceID reads the device id at the front of data.
func ParseDeviceID(engine packing.Engine, data []byte) (format.DeviceID, error) {
	if len(data) < DeviceIDSize {
		return 0, fmt.Errorf("%w: device id needs %d bytes, have %d", errs.ErrTruncatedInput, DeviceIDSize, len(data))
	}

	v, err := engine.Uint32(data[:DeviceIDSize])
	if err != nil {
		return 0, err
	}

	return format.DeviceID(v), nil
}
