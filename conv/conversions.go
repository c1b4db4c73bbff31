package conv

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ByteCountDecimal formats byte sizes in a human readable way.
// Shamelessly stolen from http://programming.guide/go/formatting-byte-size-to-human-readable-format.html
func ByteCountDecimal(z int64) string {
	n := int64(math.Abs(float64(z)))
	const unit = 1000
	var neg string
	if z < 0 {
		neg = "-"
	}
	if n < unit {
		return fmt.Sprintf("%s%d b", neg, n)
	}
	div, exp := int64(unit), 0
	for n := n / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%s%.1f%cb", neg, float64(n)/float64(div), "kMGTPE"[exp])
}

// ToMap transforms a marshallable interface into a JSON-like map.
func ToMap(i interface{}) map[string]interface{} {
	m := make(map[string]interface{})
	bs, _ := json.Marshal(i)
	json.Unmarshal(bs, &m)
	return m
}

// StringOf converts any value to a string for humans: integers and floats get thousands separators,
// floats have 3 decimals, percentages (*float64) are shown as "-" when they can't be calculated.
func StringOf(v interface{}) string {
	switch x := v.(type) {
	case int, int64, uint64:
		return printer.Sprintf("%d", x)
	case float64:
		return printer.Sprintf("%.3f", x)
	case *float64:
		if x == nil {
			return "-"
		}
		return printer.Sprintf("%.2f", *x)
	case time.Duration:
		return x.String()
	case time.Time:
		return x.Format(time.RFC3339)
	case []string:
		return strings.Join(x, ",")
	default:
		return fmt.Sprintf("%v", x)
	}
}
