package report

import (
	"strings"
	"testing"

	"github.com/clinidoc/clinidoc/internal/domain/records"
)

func minimalPatient() *records.Patient {
	return &records.Patient{
		ID:     9,
		Name:   "Alex Doe",
		Age:    40,
		Gender: "Other",
	}
}

func headings(blocks []Block) []string {
	var out []string
	for _, b := range blocks {
		if b.Kind == BlockHeading {
			out = append(out, b.Text)
		}
	}
	return out
}

func lineTexts(pages []Page) []string {
	var out []string
	for _, page := range pages {
		for _, b := range page.Blocks {
			if b.Kind == BlockLine {
				out = append(out, b.Text)
			}
		}
	}
	return out
}

func TestCompose_NilPatient(t *testing.T) {
	if _, err := NewCompositor().Compose(nil); err == nil {
		t.Error("expected an error for a nil patient")
	}
}

func TestCompose_EmptyCollectionPlaceholders(t *testing.T) {
	blocks, err := NewCompositor().Compose(minimalPatient())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	var texts []string
	for _, b := range blocks {
		texts = append(texts, b.Text)
	}
	joined := strings.Join(texts, "\n")

	for _, want := range []string{
		"No chronic conditions reported",
		"No surgeries reported",
		"No allergies reported",
		"No current medications reported",
		"No diagnoses reported",
		"No upcoming appointments scheduled",
		"No past appointments recorded",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing placeholder %q", want)
		}
	}

	for _, b := range blocks {
		if b.Kind == BlockTable {
			t.Errorf("empty patient produced a table: %v", b.Columns)
		}
	}
}

func TestCompose_OmitsEmptySections(t *testing.T) {
	blocks, err := NewCompositor().Compose(minimalPatient())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	for _, h := range headings(blocks) {
		if h == "Lab Results" {
			t.Error("lab results section rendered for a patient with no panels")
		}
		if h == "Diagnosis Notes" {
			t.Error("diagnosis notes section rendered with no diagnoses")
		}
	}
}

func TestCompose_SectionOrder(t *testing.T) {
	store := records.New()
	patient, ok := store.GetPatientByName("John Doe")
	if !ok {
		t.Fatal("seed patient John Doe missing")
	}

	got := headings(mustCompose(t, patient))
	want := []string{
		"Patient Information",
		"Medical History",
		"Surgeries",
		"Allergies",
		"Current Medications",
		"Diagnoses",
		"Diagnosis Notes",
		"Lab Results",
		"Upcoming Appointments",
		"Past Appointments",
	}
	if len(got) != len(want) {
		t.Fatalf("headings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("heading %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCompose_UnknownPanelKeyPassesThrough(t *testing.T) {
	p := minimalPatient()
	p.LabResults = map[string]records.LabPanel{
		"renalFunction": {
			Date:    "2023-07-01",
			Results: []records.LabValue{{Name: "Creatinine", Value: "0.9 mg/dL"}},
		},
	}

	var found bool
	for _, b := range mustCompose(t, p) {
		if b.Kind == BlockSubheading && strings.HasPrefix(b.Text, "renalFunction") {
			found = true
		}
	}
	if !found {
		t.Error("unknown panel key was not rendered verbatim")
	}
}

func TestPanelLabel(t *testing.T) {
	tests := []struct{ key, want string }{
		{"cbc", "Complete Blood Count (CBC)"},
		{"lipidPanel", "Lipid Panel"},
		{"diabetesMonitoring", "Diabetes Monitoring"},
		{"thyroidPanel", "Thyroid Panel"},
		{"cardiacEnzymes", "Cardiac Enzymes"},
		{"somethingNew", "somethingNew"},
	}
	for _, tt := range tests {
		if got := PanelLabel(tt.key); got != tt.want {
			t.Errorf("PanelLabel(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestBuild_MinimalPatientIsSinglePage(t *testing.T) {
	doc, err := NewCompositor().Build(minimalPatient())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Errorf("expected a single page, got %d", len(doc.Pages))
	}
	if doc.PatientName != "Alex Doe" {
		t.Errorf("document patient name = %q", doc.PatientName)
	}
}

func TestBuild_LongNotesSpanPagesInOrder(t *testing.T) {
	p := minimalPatient()
	notes := strings.TrimSpace(strings.Repeat("Patient reports gradually worsening symptoms with partial relief from conservative measures. ", 80))
	p.Diagnoses = []records.Diagnosis{{
		Name:   "Chronic Fatigue",
		Date:   "2023-01-10",
		Status: records.DiagnosisOngoing,
		Notes:  notes,
	}}

	doc, err := NewCompositor().Build(p)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(doc.Pages) < 2 {
		t.Fatalf("expected the notes to overflow onto a second page, got %d page(s)", len(doc.Pages))
	}

	wrapped := WrapText("Chronic Fatigue: "+notes, WrapWidth)
	lines := lineTexts(doc.Pages)

	start := -1
	for i, line := range lines {
		if line == wrapped[0] {
			start = i
			break
		}
	}
	if start < 0 {
		t.Fatal("first wrapped notes line not found in the document")
	}
	if start+len(wrapped) > len(lines) {
		t.Fatal("wrapped notes lines are incomplete in the document")
	}
	for i, want := range wrapped {
		if lines[start+i] != want {
			t.Fatalf("notes line %d out of order: got %q, want %q", i, lines[start+i], want)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"John Doe", "John_Doe_Medical_Record.pdf"},
		{"Mary  Jane  Watson", "Mary_Jane_Watson_Medical_Record.pdf"},
		{"Cher", "Cher_Medical_Record.pdf"},
	}
	for _, tt := range tests {
		if got := FileName(tt.in); got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func mustCompose(t *testing.T, p *records.Patient) []Block {
	t.Helper()
	blocks, err := NewCompositor().Compose(p)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	return blocks
}
