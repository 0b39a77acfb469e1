package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	boreholeModel "betulabla_backend/internals/features/program/boreholes/model"
	orphanModel "betulabla_backend/internals/features/program/orphans/model"
	outreachModel "betulabla_backend/internals/features/program/outreach/model"
)

func intptr(v int) *int { return &v }

func TestSummarizeOrphans(t *testing.T) {
	rows := []orphanModel.OrphanModel{
		{FullName: "Amina", SchoolFeesCovered: true, Status: orphanModel.OrphanStatusApproved},
		{FullName: "Yusuf", SchoolFeesCovered: false, Status: orphanModel.OrphanStatusPending},
		{FullName: "Halima", SchoolFeesCovered: true, Status: orphanModel.OrphanStatusRejected},
	}

	s := SummarizeOrphans(rows)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Sponsored)
	assert.Equal(t, 1, s.Approved)
}

func TestSummarizeBoreholes_NullBeneficiaries(t *testing.T) {
	rows := []boreholeModel.BoreholeModel{
		{CommunityName: "Kaduna North", BeneficiariesCount: intptr(500), Status: boreholeModel.BoreholeStatusCompleted},
		{CommunityName: "Sokoto East", BeneficiariesCount: nil, Status: boreholeModel.BoreholeStatusInProgress},
	}

	s := SummarizeBoreholes(rows)
	assert.Equal(t, 2, s.TotalProjects)
	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 500, s.TotalBeneficiaries, "NULL counts as zero")
}

func TestSummarizeOutreach_DistinctTypes(t *testing.T) {
	rows := []outreachModel.OutreachModel{
		{Title: "Food Packs", ActivityType: outreachModel.ActivityFoodDistribution, BeneficiariesCount: intptr(100)},
		{Title: "More Food Packs", ActivityType: outreachModel.ActivityFoodDistribution, BeneficiariesCount: intptr(50)},
		{Title: "Clinic Day", ActivityType: outreachModel.ActivityMedicalOutreach, BeneficiariesCount: nil},
	}

	s := SummarizeOutreach(rows)
	assert.Equal(t, 3, s.TotalActivities)
	assert.Equal(t, 150, s.TotalBeneficiaries)
	assert.Equal(t, 2, s.ActivityTypes)
}

func TestSummaries_EmptyInput(t *testing.T) {
	assert.Equal(t, OrphanSummary{}, SummarizeOrphans(nil))
	assert.Equal(t, BoreholeSummary{}, SummarizeBoreholes(nil))
	assert.Equal(t, OutreachSummary{}, SummarizeOutreach(nil))
}

func TestReportFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "orphans-report-2026-09-01.pdf", ReportFilename("orphans", now))
	assert.Equal(t, "comprehensive-report-2026-09-01.pdf", ReportFilename("comprehensive", now))
}

func TestRenderReports_EmptyInputProducesDocument(t *testing.T) {
	now := time.Now()

	out, err := RenderOrphanReport(nil, now)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))

	out, err = RenderBoreholeReport(nil, now)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	out, err = RenderOutreachReport(nil, now)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	out, err = RenderComprehensiveReport(nil, nil, nil, now)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderComprehensiveReport_WithRows(t *testing.T) {
	orphans := []orphanModel.OrphanModel{{FullName: "Amina", Status: orphanModel.OrphanStatusApproved}}
	boreholes := []boreholeModel.BoreholeModel{{CommunityName: "Kaduna North", Location: "Kaduna State", BeneficiariesCount: intptr(500), Status: boreholeModel.BoreholeStatusCompleted}}
	outreach := []outreachModel.OutreachModel{{Title: "Clinic Day", ActivityType: outreachModel.ActivityMedicalOutreach, Location: "Maiduguri", Date: time.Now(), BeneficiariesCount: intptr(200)}}

	out, err := RenderComprehensiveReport(orphans, boreholes, outreach, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
