package synth

import (
	"github.com/medapp/medseed/internal/seed"
)

// Specs returns the declarative table of seeded entity types, ordered so
// that generating top to bottom always satisfies dependencies. This table is
// the single place entity differences live; the pipeline in internal/seed is
// shared by all of them.
func Specs() []seed.EntitySpec {
	return []seed.EntitySpec{
		{
			Name:             seed.EntityPatient,
			Plural:           "patients",
			Collection:       "patients",
			DefaultCount:     50,
			StoresCredential: true,
			Generate:         Patient,
		},
		{
			Name:             seed.EntityDoctor,
			Plural:           "doctors",
			Collection:       "doctors",
			DefaultCount:     10,
			StoresCredential: true,
			Generate:         Doctor,
		},
		{
			Name:             seed.EntityRadiologist,
			Plural:           "radiologists",
			Collection:       "radiologists",
			DefaultCount:     5,
			StoresCredential: true,
			Generate:         Radiologist,
		},
		{
			Name:         seed.EntityPrescription,
			Plural:       "prescriptions",
			Collection:   "prescriptions",
			DefaultCount: 20,
			Dependencies: []seed.Dependency{
				{Entity: seed.EntityDoctor, Collection: "doctors"},
				{Entity: seed.EntityPatient, Collection: "patients"},
			},
			Generate: Prescription,
		},
		{
			Name:         seed.EntityReport,
			Plural:       "reports",
			Collection:   "reports",
			DefaultCount: 30,
			Dependencies: []seed.Dependency{
				{Entity: seed.EntityPatient, Collection: "patients"},
				{Entity: seed.EntityRadiologist, Collection: "radiologists"},
				{Entity: seed.EntityDoctor, Collection: "doctors"},
			},
			Generate: Report,
		},
	}
}
