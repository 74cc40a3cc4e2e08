package synth

// Enumerations the categorical fields draw from. Uniform choice, no
// weighting, matching what the application UI presents.

var bloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

var specialties = []string{
	"Cardiology",
	"Dermatology",
	"Neurology",
	"Pediatrics",
	"Radiology",
	"Surgery",
	"General Medicine",
	"Ophthalmology",
	"Gynecology",
	"Orthopedics",
	"Psychiatry",
	"Urology",
}

var radiologySpecialties = []string{
	"General",
	"Neurological",
	"Musculoskeletal",
	"Abdominal",
	"Thoracic",
}

var equipment = []string{"MRI", "CT Scanner", "Ultrasound", "X-Ray", "Mammography"}

var examTypes = []string{"MRI", "CT Scan", "Ultrasound", "X-Ray", "Mammography"}

var bodyParts = []string{
	"Head",
	"Chest",
	"Abdomen",
	"Lower limbs",
	"Upper limbs",
	"Spine",
	"Pelvis",
}

var findings = []string{
	"Normal",
	"Minor abnormality",
	"Significant abnormality",
	"Concerning findings",
	"Critical findings",
}

var medications = []string{
	"Amoxicillin", "Ibuprofen", "Paracetamol", "Aspirin",
	"Loratadine", "Omeprazole", "Metformin", "Lisinopril",
	"Atorvastatin", "Albuterol", "Levothyroxine", "Metoprolol",
	"Prednisone", "Gabapentin", "Amlodipine",
}

var diagnoses = []string{
	"Upper respiratory infection",
	"Hypertension",
	"Type 2 diabetes",
	"Acute bronchitis",
	"Allergic rhinitis",
	"Urinary tract infection",
	"Viral gastroenteritis",
	"Migraine headache",
	"Anxiety disorder",
	"Lower back pain",
}

// Mostly "Dr." with the occasional professor, so prescription headers look
// like the real inbox.
var doctorTitles = []string{"Dr.", "Dr.", "Prof.", "Dr.", "Dr."}

// Placeholder signature stub embedded when a prescription is signed.
const signatureStub = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAABg"
