package fpda

import (
	"context"

	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
)

// CreateMasjid registers a new delivery location.
func (c *Client) CreateMasjid(ctx context.Context, m models.Masjid) error {
	return c.postForm(ctx, "masjid_creation", map[string]string{
		"masjid_name": m.MasjidName,
		"address":     m.Address,
		"city":        m.City,
		"created_by":  m.CreatedBy,
	}, nil)
}

// ListMasjids fetches all delivery locations.
func (c *Client) ListMasjids(ctx context.Context) ([]models.Masjid, error) {
	var out []models.Masjid
	if err := c.getJSON(ctx, "masjid_list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateItemCategory registers a new item category.
func (c *Client) CreateItemCategory(ctx context.Context, cat models.ItemCategory) error {
	return c.postForm(ctx, "category_creation", map[string]string{
		"cat_name":   cat.CatName,
		"created_by": cat.CreatedBy,
	}, nil)
}

// ListItemCategories fetches all item categories.
func (c *Client) ListItemCategories(ctx context.Context) ([]models.ItemCategory, error) {
	var out []models.ItemCategory
	if err := c.getJSON(ctx, "category_list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUnit registers a measurement unit.
func (c *Client) CreateUnit(ctx context.Context, u models.Unit) error {
	return c.postForm(ctx, "unit_creation", map[string]string{
		"unit_name":  u.UnitName,
		"unit_short": u.UnitShort,
		"created_by": u.CreatedBy,
	}, nil)
}

// ListUnits fetches all measurement units.
func (c *Client) ListUnits(ctx context.Context) ([]models.Unit, error) {
	var out []models.Unit
	if err := c.getJSON(ctx, "unit_list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateItem registers an item against its category and unit.
func (c *Client) CreateItem(ctx context.Context, item models.Item) error {
	return c.postForm(ctx, "item_creation", map[string]string{
		"item_name":  item.ItemName,
		"cat_name":   item.CatName,
		"unit_short": item.UnitShort,
		"created_by": item.CreatedBy,
	}, nil)
}

// ListItems fetches all items.
func (c *Client) ListItems(ctx context.Context) ([]models.Item, error) {
	var out []models.Item
	if err := c.getJSON(ctx, "item_list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSupplier registers a supplier.
func (c *Client) CreateSupplier(ctx context.Context, s models.Supplier) error {
	return c.postForm(ctx, "supplier_creation", map[string]string{
		"sup_name":   s.SupName,
		"sup_add":    s.SupAdd,
		"sup_city":   s.SupCity,
		"sup_mobile": s.SupMobile,
		"created_by": s.CreatedBy,
	}, nil)
}

// ListSuppliers fetches all suppliers.
func (c *Client) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var out []models.Supplier
	if err := c.getJSON(ctx, "supplier_list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRecipeType registers a recipe type with its packaging ratio.
func (c *Client) CreateRecipeType(ctx context.Context, rt models.RecipeType) error {
	return c.postForm(ctx, "recipe_type_creation", map[string]string{
		"recipe_type":   rt.RecipeType,
		"recipe_perkg":  rt.RecipePerKg.String(),
		"recipe_totpkt": rt.RecipeTotPkt.String(),
		"created_by":    rt.CreatedBy,
	}, nil)
}

// ListRecipeTypes fetches all recipe types.
func (c *Client) ListRecipeTypes(ctx context.Context) ([]models.RecipeType, error) {
	var out []models.RecipeType
	if err := c.getJSON(ctx, "recipe_type_list", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRecipeLine registers one ingredient row of a recipe type.
func (c *Client) CreateRecipeLine(ctx context.Context, line models.RecipeLine) error {
	return c.postForm(ctx, "recipe_creation", map[string]string{
		"recipe_type": line.RecipeType,
		"item_name":   line.ItemName,
		"cat_name":    line.CatName,
		"unit_short":  line.UnitShort,
		"req_qty":     line.ReqQty.String(),
	}, nil)
}

// RecipeLinesByType fetches the ingredient rows for one recipe type.
func (c *Client) RecipeLinesByType(ctx context.Context, recipeType string) ([]models.RecipeLine, error) {
	var out []models.RecipeLine
	err := c.getJSON(ctx, "recipe_items_by_type", map[string]string{"recipe_type": recipeType}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
