package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Epoch is day 0 of the daily schedule.
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// DateKey returns YYYY-MM-DD of t in t's own location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayIndex returns the number of whole calendar days between Epoch and the
// date of t in t's location. Dates before Epoch are negative.
func DayIndex(t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(Epoch).Hours()) / 24
}

// ScheduledIndex maps a date onto [0, answersLen) by its day index.
func ScheduledIndex(t time.Time, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	i := DayIndex(t) % answersLen
	if i < 0 {
		i += answersLen
	}
	return i
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}
