package progress

import "fmt"

// SizeStep is the divisor between two consecutive size units
const SizeStep = 1024

// sizeUnits lists the units tried before falling through to TB
var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count as "{value:.2f} {unit}", escalating from B up
// to TB. Values past TB stay in TB.
func FormatSize(bytes float64) string {
	for _, unit := range sizeUnits {
		if bytes < SizeStep {
			return fmt.Sprintf("%.2f %s", bytes, unit)
		}
		bytes /= SizeStep
	}
	return fmt.Sprintf("%.2f TB", bytes)
}
