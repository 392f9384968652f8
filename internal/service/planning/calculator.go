package planning

import (
	"github.com/shopspring/decimal"

	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
)

// Result is the outcome of a day-requirement computation.
//
// Batches is the raw ratio between the day's packet requirement and the
// recipe's packets-per-batch. Multiplier is that ratio rounded up to whole
// batches; the kitchen never under-produces, so a fractional batch always
// becomes a full one. ZeroRatio is set when the recipe carries no usable
// packaging ratio: the numbers degrade to zero rather than erroring, but
// callers should surface the anomaly.
type Result struct {
	Batches    decimal.Decimal
	Multiplier int64
	ZeroRatio  bool
	Lines      []models.DayRequirementLine
}

// Compute derives the per-ingredient production quantities for one day and
// recipe type.
//
// The function is pure: identical inputs give identical outputs, and each
// ingredient row is scaled independently, so row order never changes the
// result. There is no cap against available stock; quantities scale linearly
// with the multiplier.
func Compute(dayTotReq, perBatchPkts models.Qty, recipe []models.RecipeLine) Result {
	res := Result{Batches: decimal.Zero}

	if perBatchPkts.Sign() <= 0 {
		res.ZeroRatio = true
	} else {
		res.Batches = dayTotReq.Decimal.Div(perBatchPkts.Decimal)
		res.Multiplier = res.Batches.Ceil().IntPart()
		if res.Multiplier < 0 {
			res.Multiplier = 0
		}
	}

	multiplier := decimal.NewFromInt(res.Multiplier)
	res.Lines = make([]models.DayRequirementLine, 0, len(recipe))
	for _, line := range recipe {
		res.Lines = append(res.Lines, models.DayRequirementLine{
			ItemName:   line.ItemName,
			CatName:    line.CatName,
			UnitShort:  line.UnitShort,
			DayReqQty:  models.QtyFrom(line.ReqQty.Decimal.Mul(multiplier)),
		})
	}

	return res
}

// AggregateRequirement sums per-location packet requirements into the day
// total fed to Compute.
func AggregateRequirement(reqs []models.DeliveryRequirement) models.Qty {
	total := decimal.Zero
	for _, r := range reqs {
		total = total.Add(r.ReqQty.Decimal)
	}
	return models.QtyFrom(total)
}
