package service

import (
	boreholeModel "betulabla_backend/internals/features/program/boreholes/model"
	orphanModel "betulabla_backend/internals/features/program/orphans/model"
	outreachModel "betulabla_backend/internals/features/program/outreach/model"
)

// ============================
// Report aggregates
// ============================

type OrphanSummary struct {
	Total     int `json:"total"`
	Sponsored int `json:"sponsored"`
	Approved  int `json:"approved"`
}

type BoreholeSummary struct {
	TotalProjects      int `json:"total_projects"`
	Completed          int `json:"completed"`
	TotalBeneficiaries int `json:"total_beneficiaries"`
}

type OutreachSummary struct {
	TotalActivities    int `json:"total_activities"`
	TotalBeneficiaries int `json:"total_beneficiaries"`
	ActivityTypes      int `json:"activity_types"`
}

func SummarizeOrphans(rows []orphanModel.OrphanModel) OrphanSummary {
	s := OrphanSummary{Total: len(rows)}
	for _, r := range rows {
		if r.SchoolFeesCovered {
			s.Sponsored++
		}
		if r.Status == orphanModel.OrphanStatusApproved {
			s.Approved++
		}
	}
	return s
}

// SummarizeBoreholes treats a NULL beneficiaries count as zero.
func SummarizeBoreholes(rows []boreholeModel.BoreholeModel) BoreholeSummary {
	s := BoreholeSummary{TotalProjects: len(rows)}
	for _, r := range rows {
		if r.Status == boreholeModel.BoreholeStatusCompleted {
			s.Completed++
		}
		if r.BeneficiariesCount != nil {
			s.TotalBeneficiaries += *r.BeneficiariesCount
		}
	}
	return s
}

func SummarizeOutreach(rows []outreachModel.OutreachModel) OutreachSummary {
	s := OutreachSummary{TotalActivities: len(rows)}
	types := map[string]struct{}{}
	for _, r := range rows {
		if r.BeneficiariesCount != nil {
			s.TotalBeneficiaries += *r.BeneficiariesCount
		}
		types[r.ActivityType] = struct{}{}
	}
	s.ActivityTypes = len(types)
	return s
}
