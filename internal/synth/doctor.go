package synth

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medapp/medseed/internal/seed"
)

// Doctor builds one doctor account document. The license number is a
// best-effort random identifier; the unique index on it is what actually
// enforces distinctness at insert time.
func Doctor(g *seed.GenContext) bson.M {
	return bson.M{
		"name":           g.Fake.FirstName() + " " + g.Fake.LastName(),
		"email":          g.Fake.Email(),
		"specialty":      choose(g.Rng, specialties),
		"phone_number":   g.Fake.PhoneFormatted(),
		"address":        g.Fake.Street(),
		"license_number": "MD" + digits(g.Rng, 6),
		"password_hash":  g.PasswordHash,
		"is_verified":    bernoulli(g.Rng, 0.5),
		"profile_image":  nil,
	}
}
