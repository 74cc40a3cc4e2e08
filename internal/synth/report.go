package synth

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/medapp/medseed/internal/seed"
)

// Report builds one radiology report referencing an existing patient,
// radiologist, and doctor. Recommendations are attached to roughly 70% of
// reports and omitted entirely otherwise.
func Report(g *seed.GenContext) bson.M {
	doc := bson.M{
		"patient_id":     g.Pools.Pick(g.Rng, seed.EntityPatient),
		"radiologist_id": g.Pools.Pick(g.Rng, seed.EntityRadiologist),
		"doctor_id":      g.Pools.Pick(g.Rng, seed.EntityDoctor),
		"exam_type":      choose(g.Rng, examTypes),
		"body_part":      choose(g.Rng, bodyParts),
		"exam_date":      pastDate(g.Rng, examWindowDays).Format(time.RFC3339),
		"conclusions":    choose(g.Rng, findings),
		"description":    g.Fake.Paragraph(2, 4, 10, " "),
		"image_path":     "/images/reports/" + uuid.NewString() + ".jpg",
	}

	if bernoulli(g.Rng, 0.7) {
		doc["recommendations"] = g.Fake.Paragraph(1, 2, 12, " ")
	}
	return doc
}
