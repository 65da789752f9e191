package staticconfig

import (
	"fmt"

	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
	"github.com/arloliu/sja1105/section"
)

// DetectQuirks guesses the quirk mode an image was written with.
//
// A mode matches when it decodes a known device id and the first table
// header either carries a valid header CRC or is the terminator, whose CRC
// is not checked. Modes are tried in
// AllQuirkCombinations order, so the default mode wins when several produce
// the same bytes.
func DetectQuirks(data []byte) (packing.Quirks, error) {
	if len(data) < section.DeviceIDSize+section.TableHeaderSize {
		return 0, fmt.Errorf("%w: image needs at least %d bytes, have %d",
			errs.ErrTruncatedInput, section.DeviceIDSize+section.TableHeaderSize, len(data))
	}

	hdr := data[section.DeviceIDSize:]
	for _, q := range packing.AllQuirkCombinations() {
		engine := packing.NewEngine(q)

		id, err := section.ParseDeviceID(engine, data)
		if err != nil || id.Family() == format.FamilyUnknown {
			continue
		}

		first, err := section.ParseTableHeader(engine, hdr)
		if err != nil {
			continue
		}

		// The parser does not check the terminator CRC, so neither does
		// detection. Modes that differ in word order alone read a bare
		// terminator the same way.
		if first.IsTerminator() || section.VerifyCRC(engine, hdr) == nil {
			return q, nil
		}
	}

	return 0, fmt.Errorf("%w: no quirk mode yields a known device id and a valid header", errs.ErrUnknownDevice)
}
