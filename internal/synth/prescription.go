package synth

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medapp/medseed/internal/seed"
)

// Prescription builds one prescription referencing an existing doctor and
// patient. Display names are synthesized rather than looked up: the
// application denormalizes them at issue time and never joins back.
func Prescription(g *seed.GenContext) bson.M {
	n := 1 + g.Rng.Intn(3)
	meds := make([]bson.M, 0, n)
	for i := 0; i < n; i++ {
		meds = append(meds, medication(g))
	}

	doc := bson.M{
		"doctor_id":    g.Pools.Pick(g.Rng, seed.EntityDoctor),
		"patient_id":   g.Pools.Pick(g.Rng, seed.EntityPatient),
		"patient_name": g.Fake.FirstName() + " " + g.Fake.LastName(),
		"doctor_name":  choose(g.Rng, doctorTitles) + " " + g.Fake.FirstName() + " " + g.Fake.LastName(),
		"medications":  meds,
		"instructions": g.Fake.Paragraph(1, 3, 12, " "),
		"diagnosis":    choose(g.Rng, diagnoses),
		"date":         pastDate(g.Rng, prescriptionWindowDays).Format(time.RFC3339),
	}

	if bernoulli(g.Rng, 0.7) {
		doc["signature"] = signatureStub
	} else {
		doc["signature"] = nil
	}
	return doc
}

func medication(g *seed.GenContext) bson.M {
	return bson.M{
		"name":      choose(g.Rng, medications),
		"dosage":    fmt.Sprintf("%d mg", 100+g.Rng.Intn(901)),
		"frequency": fmt.Sprintf("%d times per day", 1+g.Rng.Intn(3)),
		"duration":  durationDays(g.Rng, 3, 14),
	}
}
