package model

// Validate checks the profile's field-level constraints.
func (p *Profile) Validate() error {
	if p.Age < 0 || p.Age > 150 {
		return NewValidationError("age", "must be between 0 and 150")
	}
	if !p.Gender.Valid() {
		return NewValidationError("gender", "unrecognized value")
	}
	if p.Location == "" {
		return NewValidationError("location", "is required")
	}
	if !p.EmploymentStatus.Valid() {
		return NewValidationError("employment_status", "unrecognized value")
	}
	return nil
}

// Validate checks the assessment's field-level constraints.
func (a *Assessment) Validate() error {
	if a.Age < 0 || a.Age > 150 {
		return NewValidationError("age", "must be between 0 and 150")
	}
	if !a.Gender.Valid() {
		return NewValidationError("gender", "unrecognized value")
	}
	if !a.EmploymentStatus.Valid() {
		return NewValidationError("employment_status", "unrecognized value")
	}
	if !a.Relationship.Valid() {
		return NewValidationError("relationship", "unrecognized value")
	}
	if !a.CauseOfDeath.Valid() {
		return NewValidationError("cause_of_death", "unrecognized value")
	}
	if !a.TimeSinceLoss.Valid() {
		return NewValidationError("time_since_loss", "unrecognized value")
	}
	if len(a.CurrentSupport) == 0 {
		return NewValidationError("current_support", "at least one entry is required")
	}
	for _, s := range a.CurrentSupport {
		if !s.Valid() {
			return NewValidationError("current_support", "unrecognized value "+string(s))
		}
	}
	if len(a.CopingMethods) == 0 {
		return NewValidationError("coping_methods", "at least one entry is required")
	}
	for _, m := range a.CopingMethods {
		if !m.Valid() {
			return NewValidationError("coping_methods", "unrecognized value "+string(m))
		}
	}
	if a.SleepQuality < 1 || a.SleepQuality > 5 {
		return NewValidationError("sleep_quality", "must be between 1 and 5")
	}
	if a.EnergyLevel < 1 || a.EnergyLevel > 5 {
		return NewValidationError("energy_level", "must be between 1 and 5")
	}
	if a.Story == "" {
		return NewValidationError("story", "is required")
	}
	return nil
}
