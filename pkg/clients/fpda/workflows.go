package fpda

import (
	"context"

	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
)

// CreateSchedule plans a recipe type for a date.
func (c *Client) CreateSchedule(ctx context.Context, s models.DeliverySchedule) error {
	return c.postForm(ctx, "schedule_creation", map[string]string{
		"schd_date":   s.SchdDate,
		"recipe_type": s.RecipeType,
		"recipe_code": s.RecipeCode,
	}, nil)
}

// SchedulesByDate fetches the delivery schedule for a date.
func (c *Client) SchedulesByDate(ctx context.Context, date string) ([]models.DeliverySchedule, error) {
	var out []models.DeliverySchedule
	err := c.getJSON(ctx, "schedule_by_date", map[string]string{"schd_date": date}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRequirement records one location's packet requirement for a date.
func (c *Client) CreateRequirement(ctx context.Context, r models.DeliveryRequirement) error {
	return c.postForm(ctx, "requirement_creation", map[string]string{
		"req_date":    r.ReqDate,
		"masjid_name": r.MasjidName,
		"req_qty":     r.ReqQty.String(),
	}, nil)
}

// RequirementsByDate fetches per-location requirements for a date.
func (c *Client) RequirementsByDate(ctx context.Context, date string) ([]models.DeliveryRequirement, error) {
	var out []models.DeliveryRequirement
	err := c.getJSON(ctx, "requirement_by_date", map[string]string{"req_date": date}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// dayRequirementPayload mirrors the combined lookup response.
type dayRequirementPayload struct {
	Header *models.DayRequirementHeader `json:"header"`
	Lines  []models.DayRequirementLine  `json:"lines"`
}

// DayRequirementByDate fetches the saved day requirement (header plus
// computed ingredient lines) for a date. A missing header means nothing was
// computed for that date yet.
func (c *Client) DayRequirementByDate(ctx context.Context, date string) (*models.DayRequirementHeader, []models.DayRequirementLine, error) {
	var payload dayRequirementPayload
	err := c.getJSON(ctx, "day_requirement_by_date", map[string]string{"day_req_date": date}, &payload)
	if err != nil {
		return nil, nil, err
	}
	return payload.Header, payload.Lines, nil
}

// SaveDayRequirement persists the header and then each computed line. The
// backend has no transaction surface, so a mid-way failure leaves earlier
// rows in place.
func (c *Client) SaveDayRequirement(ctx context.Context, header models.DayRequirementHeader, lines []models.DayRequirementLine) error {
	err := c.postForm(ctx, "day_requirement_creation", map[string]string{
		"day_req_date": header.DayReqDate,
		"recipe_type":  header.RecipeType,
		"recipe_code":  header.RecipeCode,
		"day_tot_req":  header.DayTotReq.String(),
	}, nil)
	if err != nil {
		return err
	}

	for _, line := range lines {
		err := c.postForm(ctx, "day_requirement_item_creation", map[string]string{
			"day_req_date": line.DayReqDate,
			"recipe_code":  line.RecipeCode,
			"item_name":    line.ItemName,
			"cat_name":     line.CatName,
			"unit_short":   line.UnitShort,
			"day_req_qty":  line.DayReqQty.String(),
		}, nil)
		if err != nil {
			return err
		}
	}

	return nil
}

// ReceiptOptions carries the dropdown data for the material receipt screen.
type ReceiptOptions struct {
	Suppliers []models.Supplier `json:"suppliers"`
	Items     []models.Item     `json:"items"`
}

// MaterialReceiptOptions fetches suppliers and items for the receipt form.
func (c *Client) MaterialReceiptOptions(ctx context.Context) (*ReceiptOptions, error) {
	var out ReceiptOptions
	if err := c.getJSON(ctx, "material_receipt_dropdown", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMaterialReceipt records raw material received from a supplier.
func (c *Client) CreateMaterialReceipt(ctx context.Context, r models.MaterialReceipt) error {
	return c.postForm(ctx, "material_receipt_creation", map[string]string{
		"mat_rec_date": r.MatRecDate,
		"sup_name":     r.SupName,
		"cat_name":     r.CatName,
		"item_name":    r.ItemName,
		"unit_short":   r.UnitShort,
		"mat_rec_qty":  r.MatRecQty.String(),
	}, nil)
}

// CreatePacking records packed packet counts for a date.
func (c *Client) CreatePacking(ctx context.Context, p models.Packing) error {
	return c.postForm(ctx, "packing_creation", map[string]string{
		"pack_date":   p.PackDate,
		"recipe_type": p.RecipeType,
		"req_qty":     p.ReqQty.String(),
		"avbl_qty":    p.AvblQty.String(),
		"pack_qty":    p.PackQty.String(),
	}, nil)
}

// PackingsByDate fetches packing rows for a date.
func (c *Client) PackingsByDate(ctx context.Context, date string) ([]models.Packing, error) {
	var out []models.Packing
	err := c.getJSON(ctx, "packing_by_date", map[string]string{"pack_date": date}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAllocation assigns packed quantity to a location.
func (c *Client) CreateAllocation(ctx context.Context, a models.Allocation) error {
	return c.postForm(ctx, "allocation_creation", map[string]string{
		"alloc_date":  a.AllocDate,
		"masjid_name": a.MasjidName,
		"recipe_type": a.RecipeType,
		"req_qty":     a.ReqQty.String(),
		"avbl_qty":    a.AvblQty.String(),
		"alloc_qty":   a.AllocQty.String(),
	}, nil)
}

// AllocationsByDate fetches allocation rows for a date.
func (c *Client) AllocationsByDate(ctx context.Context, date string) ([]models.Allocation, error) {
	var out []models.Allocation
	err := c.getJSON(ctx, "allocation_by_date", map[string]string{"alloc_date": date}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDelivery confirms a hand-over at a location.
func (c *Client) CreateDelivery(ctx context.Context, d models.Delivery) error {
	return c.postForm(ctx, "delivery_creation", map[string]string{
		"location":      d.Location,
		"delivery_date": d.DeliveryDate,
		"delivery_qty":  d.DeliveryQty.String(),
		"delivery_by":   d.DeliveryBy,
	}, nil)
}

// DeliveriesByDate fetches confirmed deliveries for a date.
func (c *Client) DeliveriesByDate(ctx context.Context, date string) ([]models.Delivery, error) {
	var out []models.Delivery
	err := c.getJSON(ctx, "delivery_by_date", map[string]string{"delivery_date": date}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
