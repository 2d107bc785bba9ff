package records

// Contact holds a patient's optional contact details.
type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Condition is a chronic condition entry. DiagnosedYear is free text
// because charts record values like "childhood" alongside years.
type Condition struct {
	Name          string `json:"name"`
	DiagnosedYear string `json:"diagnosed_year"`
}

// Surgery is a past surgical procedure.
type Surgery struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

// Allergy is a known allergy with a free-text severity.
type Allergy struct {
	Name     string `json:"name"`
	Severity string `json:"severity"`
}

// Medication is a current medication entry.
type Medication struct {
	Name    string `json:"name"`
	Dosage  string `json:"dosage"`
	Purpose string `json:"purpose"`
}

// MedicalHistory groups the four owned history collections.
type MedicalHistory struct {
	ChronicConditions []Condition  `json:"chronic_conditions"`
	Surgeries         []Surgery    `json:"surgeries"`
	Allergies         []Allergy    `json:"allergies"`
	Medications       []Medication `json:"medications"`
}

// Diagnosis statuses.
const (
	DiagnosisOngoing  = "Ongoing"
	DiagnosisResolved = "Resolved"
)

// Diagnosis is a dated diagnosis with free-text notes.
type Diagnosis struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// LabValue is a single named result within a lab panel.
type LabValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LabPanel is a dated, ordered result set for one lab-panel key.
type LabPanel struct {
	Date    string     `json:"date"`
	Results []LabValue `json:"results"`
}

// Appointment is a scheduled or past visit.
type Appointment struct {
	Type     string `json:"type"`
	Provider string `json:"provider"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// Appointments holds the two ordered appointment lists.
type Appointments struct {
	Upcoming []Appointment `json:"upcoming"`
	Past     []Appointment `json:"past"`
}

// Patient is the full record aggregate. IDs are store-assigned and unique;
// lab results are keyed by stable panel identifiers (see report.PanelLabel).
type Patient struct {
	ID             int                 `json:"id"`
	Name           string              `json:"name"`
	Age            int                 `json:"age"`
	Gender         string              `json:"gender"`
	Contact        *Contact            `json:"contact,omitempty"`
	MedicalHistory MedicalHistory      `json:"medical_history"`
	Diagnoses      []Diagnosis         `json:"diagnoses"`
	LabResults     map[string]LabPanel `json:"lab_results"`
	Appointments   Appointments        `json:"appointments"`
}

// SOAPNote is the four-part clinical note. A note is either fully absent
// (nil) or has all four fields populated; it is only ever replaced
// wholesale, never patched field by field.
type SOAPNote struct {
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

// IsComplete reports whether every field of the note carries text. The
// suggestion pipeline uses this to decide between note-derived and
// fallback recommendations.
func (n *SOAPNote) IsComplete() bool {
	if n == nil {
		return false
	}
	return n.Subjective != "" && n.Objective != "" && n.Assessment != "" && n.Plan != ""
}
