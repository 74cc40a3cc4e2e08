// Package synth builds one semantically valid document per call for each of
// the seeded entity types. Generators are pure over the injected random
// source: no I/O, no state shared between calls, so calls are independently
// repeatable and safe to run in parallel.
package synth

import (
	"fmt"
	"math/rand"
	"time"
)

// Look-back windows, in days, for the date-valued fields. Each generated
// date falls uniformly within [now - window, now], both endpoints included
// at day granularity.
const (
	patientRegistrationWindowDays     = 365 * 2
	radiologistRegistrationWindowDays = 365 * 5
	prescriptionWindowDays            = 365
	examWindowDays                    = 180
)

func choose[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

func bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// digits builds a fixed-length numeric identifier from independently drawn
// digits. Not checksum-validated and not guaranteed globally unique.
func digits(rng *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + rng.Intn(10))
	}
	return string(buf)
}

// pastDate returns a timestamp a uniform number of whole days back within
// the window, inclusive of today and of the window start.
func pastDate(rng *rand.Rand, windowDays int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -rng.Intn(windowDays+1))
}

// birthDate returns a date between 1 and 90 years ago.
func birthDate(rng *rand.Rand) time.Time {
	years := 1 + rng.Intn(90)
	return time.Now().UTC().AddDate(-years, 0, -rng.Intn(365))
}

func durationDays(rng *rand.Rand, min, max int) string {
	return fmt.Sprintf("%d days", min+rng.Intn(max-min+1))
}
