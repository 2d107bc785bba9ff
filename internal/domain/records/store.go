package records

import (
	"fmt"
	"sync"
)

// Store is the in-memory clinical record registry for the active session:
// the patient list, the current-patient pointer, and the session's
// transcript and SOAP note. It replaces global session state with an
// explicit object handed to every collaborator.
//
// All mutations are wholesale, last-writer-wins. The mutex exists because
// HTTP handlers run on separate goroutines, not because the domain needs
// merge logic.
type Store struct {
	mu       sync.RWMutex
	patients []*Patient
	current  string // always the name of an existing patient
	nextID   int

	note       *SOAPNote
	transcript string
}

// New returns a store seeded with the demo patients. The store is never
// empty and the current-patient pointer always resolves.
func New() *Store {
	patients := seedPatients()
	return &Store{
		patients: patients,
		current:  patients[0].Name,
		nextID:   len(patients) + 1,
	}
}

// PatientInput carries the caller-supplied fields for AddPatient. The ID is
// store-assigned.
type PatientInput struct {
	Name           string         `json:"name"`
	Age            int            `json:"age"`
	Gender         string         `json:"gender"`
	Contact        *Contact       `json:"contact,omitempty"`
	MedicalHistory MedicalHistory `json:"medical_history"`
	Diagnoses      []Diagnosis    `json:"diagnoses"`
}

// Validate applies the same constraints the intake form does. Age must be
// numeric and positive, gender one of the fixed set.
func (in *PatientInput) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("name is required")
	}
	if in.Age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	switch in.Gender {
	case "Male", "Female", "Other":
	default:
		return fmt.Errorf("gender must be Male, Female, or Other")
	}
	return nil
}

// AddPatient assigns a fresh unique ID, appends the patient preserving
// insertion order, and makes it the current patient.
func (s *Store) AddPatient(in PatientInput) *Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &Patient{
		ID:             s.nextID,
		Name:           in.Name,
		Age:            in.Age,
		Gender:         in.Gender,
		Contact:        in.Contact,
		MedicalHistory: in.MedicalHistory,
		Diagnoses:      in.Diagnoses,
		LabResults:     map[string]LabPanel{},
	}
	s.nextID++
	s.patients = append(s.patients, p)
	s.current = p.Name
	return p
}

// GetPatientByName returns the patient with the given name, or false when
// no such patient exists.
func (s *Store) GetPatientByName(name string) (*Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(name)
}

func (s *Store) findLocked(name string) (*Patient, bool) {
	for _, p := range s.patients {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// ListPatients returns all patients in insertion order.
func (s *Store) ListPatients() []*Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Patient, len(s.patients))
	copy(out, s.patients)
	return out
}

// SetCurrentPatient repoints the current-patient selection. It reports
// whether the name resolved; on false the previous selection is unchanged.
func (s *Store) SetCurrentPatient(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.findLocked(name); !ok {
		return false
	}
	s.current = name
	return true
}

// CurrentPatient returns the active patient. The pointer always resolves:
// the store is seeded non-empty and SetCurrentPatient refuses unknown
// names.
func (s *Store) CurrentPatient() *Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, _ := s.findLocked(s.current)
	return p
}

// CurrentPatientName returns the name the selection points at.
func (s *Store) CurrentPatientName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetNote replaces the session note wholesale. Passing nil clears it. A
// note is never mutated in place: producers always hand over a complete
// four-field value.
func (s *Store) SetNote(n *SOAPNote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n == nil {
		s.note = nil
		return
	}
	copied := *n
	s.note = &copied
}

// Note returns the current session note, or nil when none has been set.
func (s *Store) Note() *SOAPNote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.note == nil {
		return nil
	}
	copied := *s.note
	return &copied
}

// SetTranscript replaces the session's raw transcript.
func (s *Store) SetTranscript(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = t
}

// Transcript returns the session's raw transcript ("" when unset).
func (s *Store) Transcript() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transcript
}
