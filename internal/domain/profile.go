package domain

import "fmt"

// PatientProfile carries the demographic context supplied at session start.
// Immutable for the session's lifetime. Sex is used only for questionnaire
// branching and routing context, never as a sole determinant of a tier.
type PatientProfile struct {
	Age      int      `json:"age"`
	Sex      Sex      `json:"sex"`
	Symptoms []string `json:"symptoms,omitempty"`
}

// Validate rejects malformed profiles at the boundary.
func (p PatientProfile) Validate() error {
	if p.Age < 0 {
		return fmt.Errorf("%w: age must be non-negative, got %d", ErrValidation, p.Age)
	}
	if !ValidSexes[string(p.Sex)] {
		return fmt.Errorf("%w: unknown sex %q", ErrValidation, p.Sex)
	}
	for _, tag := range p.Symptoms {
		if !ValidSymptomTags[tag] {
			return fmt.Errorf("%w: unknown symptom tag %q", ErrValidation, tag)
		}
	}
	return nil
}

// HasSymptom reports whether the profile carries the given symptom flag.
func (p PatientProfile) HasSymptom(tag string) bool {
	for _, s := range p.Symptoms {
		if s == tag {
			return true
		}
	}
	return false
}
