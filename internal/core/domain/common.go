package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in forms and exports.
const DateLayout = "2006-01-02"

// FormatRef renders a store id as a display reference such as TR007.
func FormatRef(prefix string, id int64) string {
	return fmt.Sprintf("%s%03d", prefix, id)
}

// ParseRef accepts either the display reference (case-insensitive) or the bare id.
func ParseRef(prefix, ref string) (int64, error) {
	s := strings.TrimSpace(ref)
	if prefix != "" && len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		s = s[len(prefix):]
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid reference %q", ref)
	}
	return id, nil
}

// TruncateDay drops the clock part of t in UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
