package dto

// DecideRequest carries one reviewer decision for a pending item.
type DecideRequest struct {
	ItemType string `json:"item_type" validate:"required,oneof=orphan borehole outreach"`
	ID       string `json:"id" validate:"required,uuid4"`
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}
