package format

import (
	"fmt"
	"strconv"
)

// SizeStyle selects how file sizes are rendered.
type SizeStyle uint8

const (
	// SizeNo disables the file-size column.
	SizeNo SizeStyle = iota

	// SizeDefault renders the byte count as a plain number.
	SizeDefault

	// SizeUnits renders the size scaled to binary units.
	SizeUnits
)

// SizeWidth is the content width of the file-size column.
const SizeWidth = 9

// UnmarshalText parses a size style name from configuration.
func (s *SizeStyle) UnmarshalText(data []byte) error {
	switch string(data) {
	case "no", "false":
		*s = SizeNo
	case "default", "yes", "true":
		*s = SizeDefault
	case "units":
		*s = SizeUnits
	default:
		return fmt.Errorf("unknown size style %q", data)
	}
	return nil
}

// String returns the configuration name of the style.
func (s SizeStyle) String() string {
	switch s {
	case SizeDefault:
		return "default"
	case SizeUnits:
		return "units"
	default:
		return "no"
	}
}

var sizeUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

// FileSize formats a size in bytes for display.
func FileSize(size int64, style SizeStyle) string {
	switch style {
	case SizeUnits:
		value := float64(size)
		i := 0
		for ; i < len(sizeUnits)-1 && value >= 1024; i++ {
			value /= 1024
		}
		if i == 0 {
			return fmt.Sprintf("%d %s", size, sizeUnits[0])
		}
		return fmt.Sprintf("%.2f %s", value, sizeUnits[i])
	case SizeDefault:
		return strconv.FormatInt(size, 10)
	default:
		return ""
	}
}
