package section

// Record sizes in bytes.
const (
	DeviceIDSize    = 4  // device id at the start of the image
	TableHeaderSize = 12 // header preceding every table
	TableCRCSize    = 4  // CRC trailing every table body
	WordSize        = 4  // the image is a stream of 32-bit words
)

// Table header bit layout.
const (
	headerBlockIDHi = 31
	headerBlockIDLo = 24
	headerLenHi     = 55
	headerLenLo     = 32
	headerCRCHi     = 95
	headerCRCLo     = 64

	// headerCRCCovered is the number of header bytes protected by the header CRC.
	headerCRCCovered = TableHeaderSize - TableCRCSize

	// MaxTableLen is the largest body length, in words, the 24-bit len field can hold.
	MaxTableLen = 1<<24 - 1
)
