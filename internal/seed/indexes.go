package seed

// IndexDef describes one index to provision on a collection. Keys are field
// names indexed in ascending order.
type IndexDef struct {
	Collection string
	Keys       []string
	Unique     bool
}

// IndexDefs returns the index set the application expects: unique lookups on
// operator-facing identifiers, plain indexes on the foreign keys the
// referencing collections are queried by.
func IndexDefs() []IndexDef {
	return []IndexDef{
		{Collection: "patients", Keys: []string{"email"}, Unique: true},
		{Collection: "patients", Keys: []string{"social_security_number"}, Unique: true},
		{Collection: "doctors", Keys: []string{"email"}, Unique: true},
		{Collection: "doctors", Keys: []string{"license_number"}, Unique: true},
		{Collection: "radiologists", Keys: []string{"email"}, Unique: true},
		{Collection: "radiologists", Keys: []string{"license_number"}, Unique: true},
		{Collection: "reports", Keys: []string{"patient_id"}},
		{Collection: "reports", Keys: []string{"radiologist_id"}},
		{Collection: "reports", Keys: []string{"doctor_id"}},
		{Collection: "prescriptions", Keys: []string{"patient_id"}},
		{Collection: "prescriptions", Keys: []string{"doctor_id"}},
	}
}
