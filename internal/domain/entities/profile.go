package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Minimum lengths for long-form profile fields to count as present.
// A two-word description earns no completeness credit.
const (
	MinDescriptionLength    = 50
	MinTargetAudienceLength = 30
)

// Profile field names used by weight tables and presence checks.
const (
	FieldCompanyName     = "company_name"
	FieldDescription     = "description"
	FieldTargetAudience  = "target_audience"
	FieldDifferentiators = "differentiators"
	FieldPainPoints      = "pain_points"
	FieldGooglePlaceID   = "google_place_id"
	FieldInstagram       = "instagram"
	FieldFacebook        = "facebook"
	FieldWebsite         = "website"
	FieldEmail           = "email"
	FieldPhone           = "phone"
)

// BusinessProfile holds the onboarding facts a tenant has filled in about
// their business. Completeness scoring only ever looks at which fields are
// present, never at content quality.
type BusinessProfile struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID        uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;uniqueIndex"`
	CompanyName     string    `json:"company_name" gorm:"type:varchar(255)"`
	Description     string    `json:"description" gorm:"type:text"`
	TargetAudience  string    `json:"target_audience" gorm:"type:text"`
	Differentiators string    `json:"differentiators" gorm:"type:text"`
	PainPoints      string    `json:"pain_points" gorm:"type:text"`
	GooglePlaceID   string    `json:"google_place_id" gorm:"type:varchar(255)"`
	Instagram       string    `json:"instagram" gorm:"type:varchar(255)"`
	Facebook        string    `json:"facebook" gorm:"type:varchar(255)"`
	Website         string    `json:"website" gorm:"type:varchar(255)"`
	Email           string    `json:"email" gorm:"type:varchar(255)"`
	Phone           string    `json:"phone" gorm:"type:varchar(50)"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for BusinessProfile
func (BusinessProfile) TableName() string {
	return "business_profiles"
}

// NewBusinessProfile creates an empty profile for a tenant
func NewBusinessProfile(tenantID uuid.UUID) *BusinessProfile {
	return &BusinessProfile{
		ID:       uuid.New(),
		TenantID: tenantID,
	}
}

// HasField reports whether the named field counts as present. Plain fields
// need a non-empty trimmed value; description and target audience must
// additionally meet their minimum lengths.
func (p *BusinessProfile) HasField(field string) bool {
	switch field {
	case FieldCompanyName:
		return present(p.CompanyName)
	case FieldDescription:
		return longForm(p.Description, MinDescriptionLength)
	case FieldTargetAudience:
		return longForm(p.TargetAudience, MinTargetAudienceLength)
	case FieldDifferentiators:
		return present(p.Differentiators)
	case FieldPainPoints:
		return present(p.PainPoints)
	case FieldGooglePlaceID:
		return present(p.GooglePlaceID)
	case FieldInstagram:
		return present(p.Instagram)
	case FieldFacebook:
		return present(p.Facebook)
	case FieldWebsite:
		return present(p.Website)
	case FieldEmail:
		return present(p.Email)
	case FieldPhone:
		return present(p.Phone)
	}
	return false
}

// HasGooglePlaceID reports whether the tenant configured their Google
// place identifier, a fact the recommendation rules check directly.
func (p *BusinessProfile) HasGooglePlaceID() bool {
	return present(p.GooglePlaceID)
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// longForm counts characters, not bytes, so accented text is not
// over-credited.
func longForm(s string, min int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= min
}
