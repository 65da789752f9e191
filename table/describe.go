package table

import (
	"fmt"
	"io"
	"net"
	"reflect"
	"strings"
)

// Describe writes a field-by-field rendering of e, one field per line.
//
// Field names are the chip's register names (the yaml tag). Fields tagged
// dump:"mac" are rendered as MAC addresses, everything else as decimal with
// a hex form for values above 9.
func Describe(w io.Writer, e Entry) error {
	ew := &errWriter{w: w}

	if vl, ok := e.(VLLookupEntry); ok {
		ew.printf("%-20s %s\n", "format", vl.Format())
	}

	v := reflect.ValueOf(e)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := fieldName(sf)
		style := sf.Tag.Get("dump")
		fv := v.Field(i)

		switch fv.Kind() { //nolint: exhaustive
		case reflect.Uint64:
			ew.printf("%-20s %s\n", name, formatValue(fv.Uint(), style))
		case reflect.Array:
			for j := 0; j < fv.Len(); j++ {
				ew.printf("%-20s %s\n", fmt.Sprintf("%s[%d]", name, j), formatValue(fv.Index(j).Uint(), style))
			}
		}
	}

	return ew.err
}

// String returns the Describe rendering of e.
func String(e Entry) string {
	var sb strings.Builder
	_ = Describe(&sb, e)

	return sb.String()
}

func fieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get("yaml")
	if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
		return name
	}

	return strings.ToLower(sf.Name)
}

func formatValue(v uint64, style string) string {
	if style == "mac" {
		return MACString(v)
	}

	if v > 9 {
		return fmt.Sprintf("%d (0x%x)", v, v)
	}

	return fmt.Sprintf("%d", v)
}

// MACString renders the low 48 bits of v as a colon separated MAC address.
func MACString(v uint64) string {
	mac := make(net.HardwareAddr, 6)
	for i := 5; i >= 0; i-- {
		mac[i] = byte(v)
		v >>= 8
	}

	return mac.String()
}

// MACUint64 converts a 6-byte hardware address to the 48-bit field value.
func MACUint64(mac net.HardwareAddr) uint64 {
	var v uint64
	for _, b := range mac {
		v = v<<8 | uint64(b)
	}

	return v
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
