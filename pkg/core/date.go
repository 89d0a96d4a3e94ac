package core

import (
	"fmt"
	"time"
)

// FormatDate renders t as a PDF date string, D:YYYYMMDDHHMMSS±HH'MM',
// using t's own zone offset.
func FormatDate(t time.Time) string {
	_, offset := t.Zone()
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("D:%s%c%02d'%02d'", t.Format("20060102150405"), sign, offset/3600, (offset%3600)/60)
}
