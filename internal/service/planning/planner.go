package planning

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
)

// Backend captures the lookups and writes the planner needs from the API client.
type Backend interface {
	SchedulesByDate(ctx context.Context, date string) ([]models.DeliverySchedule, error)
	RequirementsByDate(ctx context.Context, date string) ([]models.DeliveryRequirement, error)
	ListRecipeTypes(ctx context.Context) ([]models.RecipeType, error)
	RecipeLinesByType(ctx context.Context, recipeType string) ([]models.RecipeLine, error)
	SaveDayRequirement(ctx context.Context, header models.DayRequirementHeader, lines []models.DayRequirementLine) error
	DayRequirementByDate(ctx context.Context, date string) (*models.DayRequirementHeader, []models.DayRequirementLine, error)
}

// DayPlan is one scheduled recipe's computed requirement for a date.
type DayPlan struct {
	Header models.DayRequirementHeader `json:"header"`
	Lines  []models.DayRequirementLine `json:"lines"`
	// ZeroRatio flags a recipe type whose packaging ratio is missing or zero;
	// the plan degrades to zero quantities and the dashboard shows a warning.
	ZeroRatio bool `json:"zero_ratio"`
}

// Planner computes and persists day requirements from the day's schedule.
type Planner struct {
	backend Backend
	logger  *zap.Logger
}

// NewPlanner wires a planner instance.
func NewPlanner(backend Backend, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{backend: backend, logger: logger}
}

// ComputeForDate aggregates the date's per-location requirements and scales
// every scheduled recipe's ingredient list. Nothing is persisted.
func (p *Planner) ComputeForDate(ctx context.Context, date string) ([]DayPlan, error) {
	schedules, err := p.backend.SchedulesByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load schedule for %s: %w", date, err)
	}
	if len(schedules) == 0 {
		return nil, nil
	}

	requirements, err := p.backend.RequirementsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load requirements for %s: %w", date, err)
	}
	dayTotal := AggregateRequirement(requirements)

	recipeTypes, err := p.backend.ListRecipeTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recipe types: %w", err)
	}

	plans := make([]DayPlan, 0, len(schedules))
	for _, sched := range schedules {
		ratio := lookupRatio(recipeTypes, sched.RecipeType)

		recipe, err := p.backend.RecipeLinesByType(ctx, sched.RecipeType)
		if err != nil {
			return nil, fmt.Errorf("load recipe %s: %w", sched.RecipeType, err)
		}

		result := Compute(dayTotal, ratio, recipe)
		if result.ZeroRatio {
			p.logger.Warn("recipe type has no packaging ratio, plan degrades to zero",
				zap.String("date", date),
				zap.String("recipe_type", sched.RecipeType))
		}

		lines := result.Lines
		for i := range lines {
			lines[i].DayReqDate = date
			lines[i].RecipeCode = sched.RecipeCode
		}

		plans = append(plans, DayPlan{
			Header: models.DayRequirementHeader{
				DayReqDate: date,
				RecipeType: sched.RecipeType,
				RecipeCode: sched.RecipeCode,
				DayTotReq:  dayTotal,
			},
			Lines:     lines,
			ZeroRatio: result.ZeroRatio,
		})
	}

	return plans, nil
}

// ComputeAndSave computes the date's plans and persists each one through the
// backend. Persistence is sequential and not transactional; a failure leaves
// earlier plans saved.
func (p *Planner) ComputeAndSave(ctx context.Context, date string) ([]DayPlan, error) {
	plans, err := p.ComputeForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	for _, plan := range plans {
		if err := p.backend.SaveDayRequirement(ctx, plan.Header, plan.Lines); err != nil {
			return plans, fmt.Errorf("save day requirement %s/%s: %w", date, plan.Header.RecipeType, err)
		}
		p.logger.Info("day requirement saved",
			zap.String("date", date),
			zap.String("recipe_type", plan.Header.RecipeType),
			zap.String("day_tot_req", plan.Header.DayTotReq.String()),
			zap.Int("lines", len(plan.Lines)))
	}

	return plans, nil
}

// Lookup returns the saved day requirement for a date, if any.
func (p *Planner) Lookup(ctx context.Context, date string) (*models.DayRequirementHeader, []models.DayRequirementLine, error) {
	return p.backend.DayRequirementByDate(ctx, date)
}

func lookupRatio(types []models.RecipeType, recipeType string) models.Qty {
	for _, rt := range types {
		if strings.EqualFold(strings.TrimSpace(rt.RecipeType), strings.TrimSpace(recipeType)) {
			return rt.RecipeTotPkt
		}
	}
	// Unknown recipe type behaves like a zero ratio.
	return models.Qty{}
}
