package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	boreholeModel "betulabla_backend/internals/features/program/boreholes/model"
	orphanModel "betulabla_backend/internals/features/program/orphans/model"
)

func TestDecisionStatus(t *testing.T) {
	s, err := DecisionStatus(DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, "approved", s)

	s, err = DecisionStatus(DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, "rejected", s)

	_, err = DecisionStatus("active")
	assert.Error(t, err)

	_, err = DecisionStatus("")
	assert.Error(t, err)
}

func TestTableForItemType(t *testing.T) {
	tbl, err := TableForItemType(ItemTypeOrphan)
	require.NoError(t, err)
	assert.Equal(t, "orphans", tbl)

	tbl, err = TableForItemType(ItemTypeBorehole)
	require.NoError(t, err)
	assert.Equal(t, "boreholes", tbl)

	tbl, err = TableForItemType(ItemTypeOutreach)
	require.NoError(t, err)
	assert.Equal(t, "outreach_activities", tbl)

	_, err = TableForItemType("donation")
	assert.Error(t, err)
}

func TestMergePending_OrderedOldestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(min int) time.Time { return base.Add(time.Duration(min) * time.Minute) }

	orphans := []PendingItem{
		{ID: uuid.New(), ItemType: ItemTypeOrphan, CreatedAt: at(10)},
		{ID: uuid.New(), ItemType: ItemTypeOrphan, CreatedAt: at(30)},
	}
	boreholes := []PendingItem{
		{ID: uuid.New(), ItemType: ItemTypeBorehole, CreatedAt: at(5)},
	}
	outreach := []PendingItem{
		{ID: uuid.New(), ItemType: ItemTypeOutreach, CreatedAt: at(20)},
	}

	merged := MergePending(orphans, boreholes, outreach)
	require.Len(t, merged, 4)
	assert.Equal(t, ItemTypeBorehole, merged[0].ItemType)
	assert.Equal(t, ItemTypeOrphan, merged[1].ItemType)
	assert.Equal(t, ItemTypeOutreach, merged[2].ItemType)
	assert.Equal(t, at(30), merged[3].CreatedAt)
}

func TestMergePending_Empty(t *testing.T) {
	merged := MergePending(nil, nil, nil)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}

func TestPendingItemConverters(t *testing.T) {
	loc := "Lagos"
	o := orphanModel.OrphanModel{ID: uuid.New(), FullName: "Amina", Location: &loc}
	item := OrphanPendingItem(o)
	assert.Equal(t, o.ID, item.ID)
	assert.Equal(t, ItemTypeOrphan, item.ItemType)
	assert.Equal(t, "Amina", item.Title)
	require.NotNil(t, item.Location)
	assert.Equal(t, "Lagos", *item.Location)

	b := boreholeModel.BoreholeModel{ID: uuid.New(), CommunityName: "Kaduna North", Location: "Kaduna State"}
	bItem := BoreholePendingItem(b)
	assert.Equal(t, ItemTypeBorehole, bItem.ItemType)
	assert.Equal(t, "Kaduna North", bItem.Title)
	require.NotNil(t, bItem.Location)
	assert.Equal(t, "Kaduna State", *bItem.Location)
}
