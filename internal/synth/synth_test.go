package synth

import (
	"math/rand"
	"testing"
	"time"
)

func TestDigits(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{6, 15} {
		for i := 0; i < 100; i++ {
			s := digits(rng, n)
			if len(s) != n {
				t.Fatalf("digits(%d) = %q, wrong length", n, s)
			}
			for _, c := range s {
				if c < '0' || c > '9' {
					t.Fatalf("digits(%d) = %q contains non-digit %q", n, s, c)
				}
			}
		}
	}
}

func TestPastDateStaysInsideWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, window := range []int{examWindowDays, prescriptionWindowDays, patientRegistrationWindowDays, radiologistRegistrationWindowDays} {
		earliest := time.Now().UTC().AddDate(0, 0, -window).Add(-time.Minute)
		for i := 0; i < 2000; i++ {
			d := pastDate(rng, window)
			if d.After(time.Now().UTC().Add(time.Minute)) {
				t.Fatalf("window %d: generated future date %s", window, d)
			}
			if d.Before(earliest) {
				t.Fatalf("window %d: date %s is before the window start", window, d)
			}
		}
	}
}

func TestPastDateCoversBothEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const window = 2

	sawToday, sawOldest := false, false
	for i := 0; i < 500; i++ {
		d := pastDate(rng, window)
		age := int(time.Now().UTC().Sub(d).Hours() / 24)
		switch age {
		case 0:
			sawToday = true
		case window:
			sawOldest = true
		}
	}
	if !sawToday || !sawOldest {
		t.Fatalf("window endpoints not both reachable: today=%v oldest=%v", sawToday, sawOldest)
	}
}

func TestBirthDateRange(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	now := time.Now().UTC()
	for i := 0; i < 2000; i++ {
		d := birthDate(rng)
		if d.After(now.AddDate(-1, 0, 1)) {
			t.Fatalf("birth date %s is less than a year old", d)
		}
		if d.Before(now.AddDate(-91, 0, -1)) {
			t.Fatalf("birth date %s is more than 91 years old", d)
		}
	}
}

func TestBernoulliFrequency(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	const trials = 20000
	for _, p := range []float64{0.3, 0.5, 0.7} {
		hits := 0
		for i := 0; i < trials; i++ {
			if bernoulli(rng, p) {
				hits++
			}
		}
		got := float64(hits) / trials
		if got < p-0.02 || got > p+0.02 {
			t.Fatalf("bernoulli(%v) hit rate %v over %d trials", p, got, trials)
		}
	}
}

func TestDurationDays(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[durationDays(rng, 3, 14)] = true
	}
	for d := 3; d <= 14; d++ {
		want := ""
		switch d {
		case 3:
			want = "3 days"
		case 14:
			want = "14 days"
		default:
			continue
		}
		if !seen[want] {
			t.Fatalf("%q never generated over 500 draws", want)
		}
	}
	if len(seen) != 12 {
		t.Fatalf("got %d distinct durations, want 12", len(seen))
	}
}
