package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
	"github.com/arsathrahman00-arsath/fpda/internal/service/masterdata"
	"github.com/arsathrahman00-arsath/fpda/pkg/clients/fpda"
)

const (
	maxNameLen    = 50
	maxAddressLen = 120
)

// MastersHandler serves the list/create screens for every master entity.
type MastersHandler struct {
	client  *fpda.Client
	masters *masterdata.Service
	logger  *zap.Logger
}

// NewMastersHandler constructs the HTTP handler adapter.
func NewMastersHandler(client *fpda.Client, masters *masterdata.Service, logger *zap.Logger) *MastersHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MastersHandler{client: client, masters: masters, logger: logger}
}

// ListMasjids returns all delivery locations.
func (h *MastersHandler) ListMasjids(c *gin.Context) {
	masjids, err := h.client.ListMasjids(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": masjids})
}

// CreateMasjid validates, deduplicates and creates a delivery location.
func (h *MastersHandler) CreateMasjid(c *gin.Context) {
	var m models.Masjid
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "masjid_name is required"})
		return
	}

	if err := masterdata.RequireText("masjid_name", m.MasjidName, maxNameLen); err != nil {
		respondError(c, h.logger, err)
		return
	}

	existing, err := h.client.ListMasjids(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	names := make([]string, 0, len(existing))
	for _, e := range existing {
		names = append(names, e.MasjidName)
	}
	if err := h.masters.CheckDuplicate(names, m.MasjidName); err != nil {
		respondError(c, h.logger, err)
		return
	}

	m.CreatedBy = currentUser(c).UserName
	if err := h.client.CreateMasjid(c.Request.Context(), m); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// ListItemCategories returns all item categories.
func (h *MastersHandler) ListItemCategories(c *gin.Context) {
	cats, err := h.client.ListItemCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cats})
}

// CreateItemCategory validates, deduplicates and creates a category.
func (h *MastersHandler) CreateItemCategory(c *gin.Context) {
	var cat models.ItemCategory
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cat_name is required"})
		return
	}

	if err := masterdata.RequireText("cat_name", cat.CatName, maxNameLen); err != nil {
		respondError(c, h.logger, err)
		return
	}

	existing, err := h.client.ListItemCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	names := make([]string, 0, len(existing))
	for _, e := range existing {
		names = append(names, e.CatName)
	}
	if err := h.masters.CheckDuplicate(names, cat.CatName); err != nil {
		respondError(c, h.logger, err)
		return
	}

	cat.CreatedBy = currentUser(c).UserName
	if err := h.client.CreateItemCategory(c.Request.Context(), cat); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// ListUnits returns all measurement units.
func (h *MastersHandler) ListUnits(c *gin.Context) {
	units, err := h.client.ListUnits(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": units})
}

// CreateUnit validates, deduplicates and creates a unit.
func (h *MastersHandler) CreateUnit(c *gin.Context) {
	var u models.Unit
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit_name and unit_short are required"})
		return
	}

	if err := masterdata.RequireText("unit_name", u.UnitName, maxNameLen); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := masterdata.RequireText("unit_short", u.UnitShort, 10); err != nil {
		respondError(c, h.logger, err)
		return
	}

	existing, err := h.client.ListUnits(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	names := make([]string, 0, len(existing))
	for _, e := range existing {
		names = append(names, e.UnitName)
	}
	if err := h.masters.CheckDuplicate(names, u.UnitName); err != nil {
		respondError(c, h.logger, err)
		return
	}

	u.CreatedBy = currentUser(c).UserName
	if err := h.client.CreateUnit(c.Request.Context(), u); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// ListItems returns all items.
func (h *MastersHandler) ListItems(c *gin.Context) {
	items, err := h.client.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// CreateItem validates, deduplicates and creates a single item.
func (h *MastersHandler) CreateItem(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_name, cat_name and unit_short are required"})
		return
	}

	if err := h.validateItem(item); err != nil {
		respondError(c, h.logger, err)
		return
	}

	names, err := h.existingItemNames(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := h.masters.CheckDuplicate(names, item.ItemName); err != nil {
		respondError(c, h.logger, err)
		return
	}

	item.CreatedBy = currentUser(c).UserName
	if err := h.client.CreateItem(c.Request.Context(), item); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

type itemBatchRequest struct {
	Items []models.Item `json:"items" binding:"required,min=1"`
}

type batchRowResult struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error,omitempty"`
}

// CreateItemBatch validates every row, blocks the whole batch on any
// duplicate, then fires the creates concurrently and reports per-row results.
func (h *MastersHandler) CreateItemBatch(c *gin.Context) {
	var req itemBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items must contain at least one row"})
		return
	}

	for _, item := range req.Items {
		if err := h.validateItem(item); err != nil {
			respondError(c, h.logger, err)
			return
		}
	}

	existingNames, err := h.existingItemNames(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	newNames := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		newNames = append(newNames, item.ItemName)
	}
	if err := h.masters.CheckBatchDuplicates(existingNames, newNames); err != nil {
		respondError(c, h.logger, err)
		return
	}

	user := currentUser(c).UserName
	batch := make([]masterdata.BatchItem, 0, len(req.Items))
	for _, item := range req.Items {
		item.CreatedBy = user
		row := item
		batch = append(batch, masterdata.BatchItem{
			Name:   row.ItemName,
			Create: func(ctx context.Context) error { return h.client.CreateItem(ctx, row) },
		})
	}

	results, batchErr := h.masters.CreateBatch(c.Request.Context(), batch)

	rows := make([]batchRowResult, 0, len(results))
	for _, r := range results {
		row := batchRowResult{Index: r.Index, Name: r.Name}
		if r.Err != nil {
			row.Error = r.Err.Error()
		}
		rows = append(rows, row)
	}

	if batchErr != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": batchErr.Error(), "results": rows})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "results": rows})
}

func (h *MastersHandler) validateItem(item models.Item) error {
	if err := masterdata.RequireText("item_name", item.ItemName, maxNameLen); err != nil {
		return err
	}
	if err := masterdata.RequireText("cat_name", item.CatName, maxNameLen); err != nil {
		return err
	}
	return masterdata.RequireText("unit_short", item.UnitShort, 10)
}

func (h *MastersHandler) existingItemNames(c *gin.Context) ([]string, error) {
	existing, err := h.client.ListItems(c.Request.Context())
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(existing))
	for _, e := range existing {
		names = append(names, e.ItemName)
	}
	return names, nil
}

// ListSuppliers returns all suppliers.
func (h *MastersHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.client.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": suppliers})
}

// CreateSupplier validates, deduplicates and creates a supplier.
func (h *MastersHandler) CreateSupplier(c *gin.Context) {
	var s models.Supplier
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sup_name is required"})
		return
	}

	if err := masterdata.RequireText("sup_name", s.SupName, maxNameLen); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if s.SupAdd != "" && len(s.SupAdd) > maxAddressLen {
		respondError(c, h.logger, &masterdata.FieldError{Field: "sup_add", Message: "is too long"})
		return
	}
	if err := masterdata.OptionalPhone("sup_mobile", s.SupMobile); err != nil {
		respondError(c, h.logger, err)
		return
	}

	existing, err := h.client.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	names := make([]string, 0, len(existing))
	for _, e := range existing {
		names = append(names, e.SupName)
	}
	if err := h.masters.CheckDuplicate(names, s.SupName); err != nil {
		respondError(c, h.logger, err)
		return
	}

	s.CreatedBy = currentUser(c).UserName
	if err := h.client.CreateSupplier(c.Request.Context(), s); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// ListRecipeTypes returns all recipe types.
func (h *MastersHandler) ListRecipeTypes(c *gin.Context) {
	types, err := h.client.ListRecipeTypes(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": types})
}

// recipeTypeRequest keeps the ratio fields raw so "must be a number" fires on
// the text the user typed, before Qty coerces garbage to zero.
type recipeTypeRequest struct {
	RecipeType   string          `json:"recipe_type" binding:"required"`
	RecipePerKg  json.RawMessage `json:"recipe_perkg"`
	RecipeTotPkt json.RawMessage `json:"recipe_totpkt"`
}

// CreateRecipeType validates, deduplicates and creates a recipe type.
func (h *MastersHandler) CreateRecipeType(c *gin.Context) {
	var req recipeTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_type is required"})
		return
	}

	if err := masterdata.RequireText("recipe_type", req.RecipeType, maxNameLen); err != nil {
		respondError(c, h.logger, err)
		return
	}
	totPkt := rawNumberText(req.RecipeTotPkt)
	if err := masterdata.RequireNumeric("recipe_totpkt", totPkt); err != nil {
		respondError(c, h.logger, err)
		return
	}
	perKg := rawNumberText(req.RecipePerKg)
	if perKg != "" {
		if err := masterdata.RequireNumeric("recipe_perkg", perKg); err != nil {
			respondError(c, h.logger, err)
			return
		}
	}

	rt := models.RecipeType{
		RecipeType:   req.RecipeType,
		RecipePerKg:  models.ParseQty(perKg),
		RecipeTotPkt: models.ParseQty(totPkt),
	}

	existing, err := h.client.ListRecipeTypes(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	names := make([]string, 0, len(existing))
	for _, e := range existing {
		names = append(names, e.RecipeType)
	}
	if err := h.masters.CheckDuplicate(names, rt.RecipeType); err != nil {
		respondError(c, h.logger, err)
		return
	}

	rt.CreatedBy = currentUser(c).UserName
	if err := h.client.CreateRecipeType(c.Request.Context(), rt); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// rawNumberText strips JSON quoting from a raw field so a submitted value like
// "50" and 50 validate the same way. Absent and null fields become "".
func rawNumberText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	if s == "null" {
		return ""
	}
	return strings.TrimSpace(s)
}

// RecipeLinesByType returns the ingredient rows of one recipe type.
func (h *MastersHandler) RecipeLinesByType(c *gin.Context) {
	recipeType := strings.TrimSpace(c.Param("type"))
	if recipeType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe type is required"})
		return
	}

	lines, err := h.client.RecipeLinesByType(c.Request.Context(), recipeType)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": lines})
}

// CreateRecipeLine adds one ingredient row to a recipe type.
func (h *MastersHandler) CreateRecipeLine(c *gin.Context) {
	var line models.RecipeLine
	if err := c.ShouldBindJSON(&line); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_type and item_name are required"})
		return
	}

	if err := masterdata.RequireText("recipe_type", line.RecipeType, maxNameLen); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := masterdata.RequireText("item_name", line.ItemName, maxNameLen); err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.client.CreateRecipeLine(c.Request.Context(), line); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}
