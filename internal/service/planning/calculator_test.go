package planning

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
)

func qty(s string) models.Qty {
	return models.ParseQty(s)
}

func recipeOf(reqQtys ...string) []models.RecipeLine {
	lines := make([]models.RecipeLine, 0, len(reqQtys))
	for i, q := range reqQtys {
		lines = append(lines, models.RecipeLine{
			RecipeType: "BIRYANI",
			ItemName:   "ITEM_" + string(rune('A'+i)),
			UnitShort:  "kg",
			ReqQty:     qty(q),
		})
	}
	return lines
}

func TestCompute_Multiplier(t *testing.T) {
	tests := []struct {
		name           string
		dayTotReq      string
		perBatchPkts   string
		wantMultiplier int64
		wantZeroRatio  bool
	}{
		{name: "exact division", dayTotReq: "100", perBatchPkts: "50", wantMultiplier: 2},
		{name: "fractional rounds up", dayTotReq: "120", perBatchPkts: "50", wantMultiplier: 3},
		{name: "under one batch rounds up", dayTotReq: "1", perBatchPkts: "50", wantMultiplier: 1},
		{name: "zero requirement", dayTotReq: "0", perBatchPkts: "50", wantMultiplier: 0},
		{name: "fractional requirement preserved until ceil", dayTotReq: "100.5", perBatchPkts: "50", wantMultiplier: 3},
		{name: "zero ratio degrades", dayTotReq: "120", perBatchPkts: "0", wantMultiplier: 0, wantZeroRatio: true},
		{name: "missing ratio degrades", dayTotReq: "120", perBatchPkts: "not-a-number", wantMultiplier: 0, wantZeroRatio: true},
		{name: "negative ratio degrades", dayTotReq: "120", perBatchPkts: "-5", wantMultiplier: 0, wantZeroRatio: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Compute(qty(tc.dayTotReq), qty(tc.perBatchPkts), recipeOf("2"))
			if res.Multiplier != tc.wantMultiplier {
				t.Errorf("multiplier = %d, want %d", res.Multiplier, tc.wantMultiplier)
			}
			if res.ZeroRatio != tc.wantZeroRatio {
				t.Errorf("zeroRatio = %v, want %v", res.ZeroRatio, tc.wantZeroRatio)
			}
		})
	}
}

func TestCompute_ScalesIngredients(t *testing.T) {
	// 120 packets over 50 per batch: 2.4 batches, rounded up to 3.
	res := Compute(qty("120"), qty("50"), recipeOf("2", "0.5", "0"))

	if !res.Batches.Equal(decimal.RequireFromString("2.4")) {
		t.Errorf("batches = %s, want 2.4", res.Batches)
	}
	if res.Multiplier != 3 {
		t.Fatalf("multiplier = %d, want 3", res.Multiplier)
	}

	want := []string{"6", "1.5", "0"}
	if len(res.Lines) != len(want) {
		t.Fatalf("lines = %d, want %d", len(res.Lines), len(want))
	}
	for i, w := range want {
		if !res.Lines[i].DayReqQty.Equal(decimal.RequireFromString(w)) {
			t.Errorf("line %d qty = %s, want %s", i, res.Lines[i].DayReqQty, w)
		}
	}
}

func TestCompute_ZeroRequirementZeroesAllLines(t *testing.T) {
	res := Compute(qty("0"), qty("50"), recipeOf("2", "3", "4"))

	if res.Multiplier != 0 {
		t.Fatalf("multiplier = %d, want 0", res.Multiplier)
	}
	for i, line := range res.Lines {
		if !line.DayReqQty.IsZero() {
			t.Errorf("line %d qty = %s, want 0", i, line.DayReqQty)
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	recipe := recipeOf("2", "0.5", "7")

	first := Compute(qty("120"), qty("50"), recipe)
	second := Compute(qty("120"), qty("50"), recipe)

	if first.Multiplier != second.Multiplier || !first.Batches.Equal(second.Batches) {
		t.Fatalf("repeated call diverged: %+v vs %+v", first, second)
	}
	for i := range first.Lines {
		if !first.Lines[i].DayReqQty.Equal(second.Lines[i].DayReqQty.Decimal) {
			t.Errorf("line %d diverged: %s vs %s", i, first.Lines[i].DayReqQty, second.Lines[i].DayReqQty)
		}
	}
}

func TestCompute_RowOrderIndependent(t *testing.T) {
	forward := recipeOf("2", "0.5", "7")
	reversed := []models.RecipeLine{forward[2], forward[1], forward[0]}

	a := Compute(qty("120"), qty("50"), forward)
	b := Compute(qty("120"), qty("50"), reversed)

	for i := range a.Lines {
		j := len(b.Lines) - 1 - i
		if a.Lines[i].ItemName != b.Lines[j].ItemName {
			t.Fatalf("unexpected ordering: %s vs %s", a.Lines[i].ItemName, b.Lines[j].ItemName)
		}
		if !a.Lines[i].DayReqQty.Equal(b.Lines[j].DayReqQty.Decimal) {
			t.Errorf("item %s qty changed with ordering: %s vs %s",
				a.Lines[i].ItemName, a.Lines[i].DayReqQty, b.Lines[j].DayReqQty)
		}
	}
}

func TestCompute_MonotonicInRequirement(t *testing.T) {
	recipe := recipeOf("2")

	prev := decimal.Zero
	for _, req := range []string{"0", "10", "50", "50.1", "100", "500"} {
		res := Compute(qty(req), qty("50"), recipe)
		got := res.Lines[0].DayReqQty.Decimal
		if got.LessThan(prev) {
			t.Errorf("total for day_tot_req=%s dropped: %s < %s", req, got, prev)
		}
		prev = got
	}
}

func TestAggregateRequirement(t *testing.T) {
	reqs := []models.DeliveryRequirement{
		{MasjidName: "NORTH", ReqQty: qty("40")},
		{MasjidName: "SOUTH", ReqQty: qty("55.5")},
		{MasjidName: "EAST", ReqQty: qty("24.5")},
	}

	total := AggregateRequirement(reqs)
	if !total.Equal(decimal.RequireFromString("120")) {
		t.Errorf("total = %s, want 120", total)
	}

	if !AggregateRequirement(nil).IsZero() {
		t.Error("empty aggregation should be zero")
	}
}
