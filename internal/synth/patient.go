package synth

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medapp/medseed/internal/seed"
)

// Patient builds one patient account document. Medical history is present
// for roughly 30% of patients and allergies for 50%, each with 1 to 3
// entries, so list-rendering code paths see both empty and populated cases.
func Patient(g *seed.GenContext) bson.M {
	history := []string{}
	if bernoulli(g.Rng, 0.3) {
		n := 1 + g.Rng.Intn(3)
		for i := 0; i < n; i++ {
			history = append(history, g.Fake.Sentence(3+g.Rng.Intn(7)))
		}
	}

	allergies := []string{}
	if bernoulli(g.Rng, 0.5) {
		n := 1 + g.Rng.Intn(3)
		for i := 0; i < n; i++ {
			allergies = append(allergies, g.Fake.Word())
		}
	}

	return bson.M{
		"name":                   g.Fake.FirstName() + " " + g.Fake.LastName(),
		"email":                  g.Fake.Email(),
		"phone_number":           g.Fake.PhoneFormatted(),
		"address":                g.Fake.Street(),
		"date_of_birth":          birthDate(g.Rng).Format("2006-01-02"),
		"blood_type":             choose(g.Rng, bloodTypes),
		"social_security_number": digits(g.Rng, 15),
		"medical_history":        history,
		"allergies":              allergies,
		"registration_date":      pastDate(g.Rng, patientRegistrationWindowDays).Format(time.RFC3339),
		"password_hash":          g.PasswordHash,
	}
}
