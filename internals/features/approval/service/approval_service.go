package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	boreholeModel "betulabla_backend/internals/features/program/boreholes/model"
	orphanModel "betulabla_backend/internals/features/program/orphans/model"
	outreachModel "betulabla_backend/internals/features/program/outreach/model"
)

// Item types accepted by the approval queue.
const (
	ItemTypeOrphan   = "orphan"
	ItemTypeBorehole = "borehole"
	ItemTypeOutreach = "outreach"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// PendingItem is one row in the merged review queue. Title carries the
// human-readable label of the underlying record (name, community, title).
type PendingItem struct {
	ID        uuid.UUID `json:"id"`
	ItemType  string    `json:"item_type"`
	Title     string    `json:"title"`
	Location  *string   `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// TableForItemType maps a queue item type to its backing table.
func TableForItemType(itemType string) (string, error) {
	switch itemType {
	case ItemTypeOrphan:
		return orphanModel.OrphanModel{}.TableName(), nil
	case ItemTypeBorehole:
		return boreholeModel.BoreholeModel{}.TableName(), nil
	case ItemTypeOutreach:
		return outreachModel.OutreachModel{}.TableName(), nil
	}
	return "", fmt.Errorf("unknown item type: %s", itemType)
}

// DecisionStatus resolves a reviewer decision to the status literal
// written to the row.
func DecisionStatus(decision string) (string, error) {
	switch decision {
	case DecisionApprove:
		return "approved", nil
	case DecisionReject:
		return "rejected", nil
	}
	return "", fmt.Errorf("unknown decision: %s", decision)
}

// MergePending combines the per-table pending fetches into one queue,
// oldest submission first so nothing starves at the back.
func MergePending(lists ...[]PendingItem) []PendingItem {
	size := 0
	for _, l := range lists {
		size += len(l)
	}
	merged := make([]PendingItem, 0, size)
	for _, l := range lists {
		merged = append(merged, l...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.Before(merged[j].CreatedAt)
	})
	return merged
}

func OrphanPendingItem(m orphanModel.OrphanModel) PendingItem {
	return PendingItem{
		ID:        m.ID,
		ItemType:  ItemTypeOrphan,
		Title:     m.FullName,
		Location:  m.Location,
		CreatedAt: m.CreatedAt,
	}
}

func BoreholePendingItem(m boreholeModel.BoreholeModel) PendingItem {
	loc := m.Location
	return PendingItem{
		ID:        m.ID,
		ItemType:  ItemTypeBorehole,
		Title:     m.CommunityName,
		Location:  &loc,
		CreatedAt: m.CreatedAt,
	}
}

func OutreachPendingItem(m outreachModel.OutreachModel) PendingItem {
	loc := m.Location
	return PendingItem{
		ID:        m.ID,
		ItemType:  ItemTypeOutreach,
		Title:     m.Title,
		Location:  &loc,
		CreatedAt: m.CreatedAt,
	}
}
