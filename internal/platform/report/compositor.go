package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/clinidoc/clinidoc/internal/domain/records"
)

// Empty-collection placeholders. Sections always render; an empty
// collection produces a single placeholder line instead of a table.
const (
	placeholderConditions   = "No chronic conditions reported"
	placeholderSurgeries    = "No surgeries reported"
	placeholderAllergies    = "No allergies reported"
	placeholderMedications  = "No current medications reported"
	placeholderDiagnoses    = "No diagnoses reported"
	placeholderUpcomingAppt = "No upcoming appointments scheduled"
	placeholderPastAppt     = "No past appointments recorded"
)

// panelLabels maps lab panel identifiers to their display headings.
var panelLabels = map[string]string{
	"cbc":                "Complete Blood Count (CBC)",
	"lipidPanel":         "Lipid Panel",
	"diabetesMonitoring": "Diabetes Monitoring",
	"thyroidPanel":       "Thyroid Panel",
	"cardiacEnzymes":     "Cardiac Enzymes",
}

// PanelLabel resolves a lab panel key to its display heading. Unknown keys
// pass through verbatim so new panels still render.
func PanelLabel(key string) string {
	if label, ok := panelLabels[key]; ok {
		return label
	}
	return key
}

// Document is a fully laid-out report ready for rendering.
type Document struct {
	PatientName string
	GeneratedAt time.Time
	Pages       []Page
}

// Compositor turns patient records into laid-out report documents.
type Compositor struct {
	now func() time.Time
}

// NewCompositor returns a Compositor using the wall clock.
func NewCompositor() *Compositor {
	return &Compositor{now: time.Now}
}

// Build composes and paginates the report for a patient.
func (c *Compositor) Build(p *records.Patient) (*Document, error) {
	blocks, err := c.Compose(p)
	if err != nil {
		return nil, err
	}
	return &Document{
		PatientName: p.Name,
		GeneratedAt: c.now(),
		Pages:       Paginate(blocks, ContentHeight),
	}, nil
}

// Compose flattens a patient record into the block sequence for the
// report. Section order is fixed: identity, medical history, diagnoses,
// diagnosis notes, lab results, then appointments. The lab results section
// is omitted entirely when the patient has no panels; every other section
// renders a placeholder when empty.
func (c *Compositor) Compose(p *records.Patient) ([]Block, error) {
	if p == nil {
		return nil, fmt.Errorf("compose report: nil patient")
	}

	var blocks []Block
	add := func(b Block) { blocks = append(blocks, b) }

	add(Block{Kind: BlockTitle, Text: "CLINIDOC"})
	add(Block{Kind: BlockSubtitle, Text: "Patient Medical Record"})

	// Identity.
	add(Block{Kind: BlockHeading, Text: "Patient Information"})
	add(Block{Kind: BlockLine, Text: "Name: " + p.Name})
	add(Block{Kind: BlockLine, Text: fmt.Sprintf("Age: %d", p.Age)})
	add(Block{Kind: BlockLine, Text: "Gender: " + p.Gender})
	if p.Contact != nil {
		add(Block{Kind: BlockLine, Text: "Phone: " + orNA(p.Contact.Phone)})
		add(Block{Kind: BlockLine, Text: "Email: " + orNA(p.Contact.Email)})
		add(Block{Kind: BlockLine, Text: "Address: " + orNA(p.Contact.Address)})
	}
	add(Block{Kind: BlockSpacer})

	// Medical history.
	add(Block{Kind: BlockHeading, Text: "Medical History"})
	if len(p.MedicalHistory.ChronicConditions) == 0 {
		add(Block{Kind: BlockLine, Text: placeholderConditions})
	} else {
		rows := make([][]string, 0, len(p.MedicalHistory.ChronicConditions))
		for _, cond := range p.MedicalHistory.ChronicConditions {
			rows = append(rows, []string{cond.Name, cond.DiagnosedYear})
		}
		add(Block{Kind: BlockTable, Columns: []string{"Chronic Conditions", "Diagnosed Year"}, Rows: rows})
	}
	add(Block{Kind: BlockSpacer})

	add(Block{Kind: BlockHeading, Text: "Surgeries"})
	if len(p.MedicalHistory.Surgeries) == 0 {
		add(Block{Kind: BlockLine, Text: placeholderSurgeries})
	} else {
		rows := make([][]string, 0, len(p.MedicalHistory.Surgeries))
		for _, s := range p.MedicalHistory.Surgeries {
			rows = append(rows, []string{s.Name, fmt.Sprintf("%d", s.Year)})
		}
		add(Block{Kind: BlockTable, Columns: []string{"Surgery", "Year"}, Rows: rows})
	}
	add(Block{Kind: BlockSpacer})

	add(Block{Kind: BlockHeading, Text: "Allergies"})
	if len(p.MedicalHistory.Allergies) == 0 {
		add(Block{Kind: BlockLine, Text: placeholderAllergies})
	} else {
		rows := make([][]string, 0, len(p.MedicalHistory.Allergies))
		for _, a := range p.MedicalHistory.Allergies {
			rows = append(rows, []string{a.Name, a.Severity})
		}
		add(Block{Kind: BlockTable, Columns: []string{"Allergy", "Severity"}, Rows: rows})
	}
	add(Block{Kind: BlockSpacer})

	add(Block{Kind: BlockHeading, Text: "Current Medications"})
	if len(p.MedicalHistory.Medications) == 0 {
		add(Block{Kind: BlockLine, Text: placeholderMedications})
	} else {
		rows := make([][]string, 0, len(p.MedicalHistory.Medications))
		for _, m := range p.MedicalHistory.Medications {
			rows = append(rows, []string{m.Name, m.Dosage, m.Purpose})
		}
		add(Block{Kind: BlockTable, Columns: []string{"Medication", "Dosage", "Purpose"}, Rows: rows})
	}
	add(Block{Kind: BlockSpacer})

	// Diagnoses.
	add(Block{Kind: BlockHeading, Text: "Diagnoses"})
	if len(p.Diagnoses) == 0 {
		add(Block{Kind: BlockLine, Text: placeholderDiagnoses})
	} else {
		rows := make([][]string, 0, len(p.Diagnoses))
		for _, d := range p.Diagnoses {
			rows = append(rows, []string{d.Name, d.Date, d.Status})
		}
		add(Block{Kind: BlockTable, Columns: []string{"Diagnosis", "Date", "Status"}, Rows: rows})
	}
	add(Block{Kind: BlockSpacer})

	// Diagnosis notes as wrapped paragraphs, one line block per wrapped
	// line so long notes break cleanly across pages.
	if len(p.Diagnoses) > 0 {
		add(Block{Kind: BlockHeading, Text: "Diagnosis Notes"})
		for _, d := range p.Diagnoses {
			for _, line := range WrapText(d.Name+": "+d.Notes, WrapWidth) {
				add(Block{Kind: BlockLine, Text: line})
			}
			add(Block{Kind: BlockSpacer})
		}
	}

	// Lab results, omitted when the patient has none. Panels render in
	// sorted key order so output is deterministic.
	if len(p.LabResults) > 0 {
		add(Block{Kind: BlockHeading, Text: "Lab Results"})
		keys := make([]string, 0, len(p.LabResults))
		for k := range p.LabResults {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			panel := p.LabResults[key]
			heading := PanelLabel(key)
			if panel.Date != "" {
				heading = fmt.Sprintf("%s (%s)", heading, panel.Date)
			}
			add(Block{Kind: BlockSubheading, Text: heading})
			for _, r := range panel.Results {
				add(Block{Kind: BlockLine, Text: r.Name + ": " + r.Value, Indent: 6})
			}
			add(Block{Kind: BlockSpacer})
		}
	}

	// Appointments.
	add(Block{Kind: BlockHeading, Text: "Upcoming Appointments"})
	if len(p.Appointments.Upcoming) == 0 {
		add(Block{Kind: BlockLine, Text: placeholderUpcomingAppt})
	} else {
		add(Block{Kind: BlockTable, Columns: apptColumns(), Rows: apptRows(p.Appointments.Upcoming)})
	}
	add(Block{Kind: BlockSpacer})

	add(Block{Kind: BlockHeading, Text: "Past Appointments"})
	if len(p.Appointments.Past) == 0 {
		add(Block{Kind: BlockLine, Text: placeholderPastAppt})
	} else {
		add(Block{Kind: BlockTable, Columns: apptColumns(), Rows: apptRows(p.Appointments.Past)})
	}

	return blocks, nil
}

// FileName builds the download filename for a patient report, with
// whitespace runs in the name collapsed to underscores.
func FileName(patientName string) string {
	return strings.Join(strings.Fields(patientName), "_") + "_Medical_Record.pdf"
}

func apptColumns() []string {
	return []string{"Type", "Provider", "Date", "Time"}
}

func apptRows(appts []records.Appointment) [][]string {
	rows := make([][]string, 0, len(appts))
	for _, a := range appts {
		rows = append(rows, []string{a.Type, a.Provider, a.Date, a.Time})
	}
	return rows
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
