package kit

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

var numberPrinter = message.NewPrinter(language.English)

// FormatBytes renders a byte count with binary (1024) steps and at most two decimals.
func FormatBytes(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	if bytes < 0 {
		return "-" + FormatBytes(-bytes)
	}

	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + byteUnits[unit]
}

// Uptime renders d as "D days, H hours, M minutes and S seconds".
func Uptime(d time.Duration) string {
	total := int64(d / time.Second)
	days := total / 86400
	hours := total / 3600 % 24
	minutes := total % 3600 / 60
	seconds := total % 60
	return fmt.Sprintf("%d days, %d hours, %d minutes and %d seconds", days, hours, minutes, seconds)
}

// FormatNumber groups thousands and keeps between minFraction and two fraction digits.
func FormatNumber(value float64, minFraction int) string {
	minFraction = min(max(minFraction, 0), 2)
	return numberPrinter.Sprint(number.Decimal(value,
		number.MinFractionDigits(minFraction),
		number.MaxFractionDigits(2),
	))
}
