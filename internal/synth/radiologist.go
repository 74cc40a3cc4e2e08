package synth

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medapp/medseed/internal/seed"
)

// Radiologist builds one radiologist account document with 1 to 3 distinct
// equipment items drawn without replacement.
func Radiologist(g *seed.GenContext) bson.M {
	n := 1 + g.Rng.Intn(3)
	available := make([]string, len(equipment))
	copy(available, equipment)
	selected := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx := g.Rng.Intn(len(available))
		selected = append(selected, available[idx])
		available = append(available[:idx], available[idx+1:]...)
	}

	return bson.M{
		"first_name":          g.Fake.FirstName(),
		"last_name":           g.Fake.LastName(),
		"email":               g.Fake.Email(),
		"phone_number":        g.Fake.PhoneFormatted(),
		"address":             g.Fake.Street(),
		"radiology_specialty": choose(g.Rng, radiologySpecialties),
		"equipment":           selected,
		"registration_date":   pastDate(g.Rng, radiologistRegistrationWindowDays).Format(time.RFC3339),
		"license_number":      "RD" + digits(g.Rng, 6),
		"password_hash":       g.PasswordHash,
	}
}
