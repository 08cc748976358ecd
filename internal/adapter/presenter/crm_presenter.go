package presenter

import (
	dto "github.com/salespulse/salespulse-backend/internal/adapter/dto/crm"
	"github.com/salespulse/salespulse-backend/internal/domain/entities"
)

// ToResponseView converts a SatisfactionResponse entity to the API shape
func ToResponseView(r *entities.SatisfactionResponse) *dto.ResponseView {
	if r == nil {
		return nil
	}
	return &dto.ResponseView{
		ID:          r.ID,
		Score:       r.Score,
		Class:       string(r.Classify()),
		Comment:     r.Comment,
		RespondedAt: r.RespondedAt,
		ResolvedAt:  r.ResolvedAt,
	}
}

// ToResponseViews converts a response list
func ToResponseViews(responses []*entities.SatisfactionResponse) []dto.ResponseView {
	views := make([]dto.ResponseView, 0, len(responses))
	for _, r := range responses {
		views = append(views, *ToResponseView(r))
	}
	return views
}

// ToLeadView converts an Opportunity entity to the API shape
func ToLeadView(o *entities.Opportunity) *dto.LeadView {
	if o == nil {
		return nil
	}
	return &dto.LeadView{
		ID:            o.ID,
		Title:         o.Title,
		ContactName:   o.ContactName,
		ContactEmail:  o.ContactEmail,
		MonetaryValue: o.MonetaryValue,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// ToLeadViews converts a lead list
func ToLeadViews(leads []*entities.Opportunity) []dto.LeadView {
	views := make([]dto.LeadView, 0, len(leads))
	for _, o := range leads {
		views = append(views, *ToLeadView(o))
	}
	return views
}
