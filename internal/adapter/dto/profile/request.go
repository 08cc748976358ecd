package profile

// UpdateProfileRequest is the onboarding form submit. Long-form fields
// carry no minimum here: short answers are stored, they just earn no
// completeness points until they meet the scoring minimums.
type UpdateProfileRequest struct {
	CompanyName     string `json:"company_name" validate:"omitempty,max=255"`
	Description     string `json:"description" validate:"omitempty,max=5000"`
	TargetAudience  string `json:"target_audience" validate:"omitempty,max=5000"`
	Differentiators string `json:"differentiators" validate:"omitempty,max=5000"`
	PainPoints      string `json:"pain_points" validate:"omitempty,max=5000"`
	GooglePlaceID   string `json:"google_place_id" validate:"omitempty,max=255"`
	Instagram       string `json:"instagram" validate:"omitempty,max=255"`
	Facebook        string `json:"facebook" validate:"omitempty,max=255"`
	Website         string `json:"website" validate:"omitempty,max=255"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone" validate:"omitempty,max=50"`
}
