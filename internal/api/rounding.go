package api

import (
	"github.com/goldira/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Decimal places kept in JSON results. Multipliers and age factors are
// table values and pass through untouched.
const (
	centPlaces    = 2
	percentPlaces = 2
)

func cents(d decimal.Decimal) decimal.Decimal   { return d.Round(centPlaces) }
func percent(d decimal.Decimal) decimal.Decimal { return d.Round(percentPlaces) }

// roundResult returns a copy of result with money rounded to cents and
// percentages to two places. The engine's exact values are not modified.
func roundResult(result domain.ScenarioResult) domain.ScenarioResult {
	if result.FERS != nil {
		result.FERS = roundFERS(*result.FERS)
	}
	if result.CalPERS != nil {
		result.CalPERS = roundCalPERS(*result.CalPERS)
	}
	if result.BaristaFIRE != nil {
		result.BaristaFIRE = roundBaristaFIRE(*result.BaristaFIRE)
	}
	if result.FatFIRE != nil {
		result.FatFIRE = roundFatFIRE(*result.FatFIRE)
	}
	return result
}

func roundCOLA(in []domain.COLAProjection) []domain.COLAProjection {
	if in == nil {
		return nil
	}
	out := make([]domain.COLAProjection, len(in))
	for i, p := range in {
		out[i] = domain.COLAProjection{Years: p.Years, Annual: cents(p.Annual), Monthly: cents(p.Monthly)}
	}
	return out
}

func roundFERS(r domain.FERSResult) *domain.FERSResult {
	r.BasicAnnuity = cents(r.BasicAnnuity)
	r.EarlyReductionPct = percent(r.EarlyReductionPct)
	r.AgeReducedAnnuity = cents(r.AgeReducedAnnuity)
	r.SurvivorReductionPct = percent(r.SurvivorReductionPct)
	r.SurvivorBenefit = cents(r.SurvivorBenefit)
	r.AnnualAnnuity = cents(r.AnnualAnnuity)
	r.MonthlyAnnuity = cents(r.MonthlyAnnuity)
	r.AnnualSupplement = cents(r.AnnualSupplement)
	r.MonthlySupplement = cents(r.MonthlySupplement)
	r.COLAProjections = roundCOLA(r.COLAProjections)
	return &r
}

func roundCalPERS(r domain.CalPERSResult) *domain.CalPERSResult {
	r.AnnualBenefit = cents(r.AnnualBenefit)
	r.MonthlyBenefit = cents(r.MonthlyBenefit)
	r.ReplacementPct = percent(r.ReplacementPct)
	if r.SurvivorVariants != nil {
		variants := make([]domain.SurvivorVariant, len(r.SurvivorVariants))
		for i, v := range r.SurvivorVariants {
			variants[i] = domain.SurvivorVariant{SurvivorPct: v.SurvivorPct, ReductionPct: percent(v.ReductionPct), Monthly: cents(v.Monthly)}
		}
		r.SurvivorVariants = variants
	}
	r.COLAProjections = roundCOLA(r.COLAProjections)
	return &r
}

func roundBaristaFIRE(r domain.BaristaFIREResult) *domain.BaristaFIREResult {
	r.MonthlyGap = cents(r.MonthlyGap)
	r.AnnualGap = cents(r.AnnualGap)
	r.AnnualExpenses = cents(r.AnnualExpenses)
	r.FullFIRETarget = cents(r.FullFIRETarget)
	r.BaristaFIRETarget = cents(r.BaristaFIRETarget)
	r.Shortfall = cents(r.Shortfall)
	r.ProgressPct = percent(r.ProgressPct)
	r.FinalBalance = cents(r.FinalBalance)
	return &r
}

func roundFatFIRE(r domain.FatFIREResult) *domain.FatFIREResult {
	r.Target = cents(r.Target)
	r.AnnualSavings = cents(r.AnnualSavings)
	r.ProjectedBalance = cents(r.ProjectedBalance)
	r.Shortfall = cents(r.Shortfall)
	r.RequiredAnnualSavings = cents(r.RequiredAnnualSavings)
	r.RequiredMonthlySavings = cents(r.RequiredMonthlySavings)
	r.ProgressPct = percent(r.ProgressPct)
	if r.Projection != nil {
		rows := make([]domain.ProjectionYear, len(r.Projection))
		for i, y := range r.Projection {
			rows[i] = domain.ProjectionYear{Age: y.Age, Contribution: cents(y.Contribution), Growth: cents(y.Growth), Balance: cents(y.Balance)}
		}
		r.Projection = rows
	}
	return &r
}
