package models

// RecipeType describes a meal category together with its packaging ratio.
// RecipeTotPkt is the packet count one reference batch yields and drives the
// day-requirement multiplier.
type RecipeType struct {
	RecipeType   string `json:"recipe_type" binding:"required"`
	RecipePerKg  Qty    `json:"recipe_perkg"`
	RecipeTotPkt Qty    `json:"recipe_totpkt"`
	CreatedBy    string `json:"created_by"`
}

// RecipeLine is one ingredient of a recipe type. ReqQty is the quantity
// needed for a single reference batch.
type RecipeLine struct {
	RecipeType string `json:"recipe_type" binding:"required"`
	ItemName   string `json:"item_name" binding:"required"`
	CatName    string `json:"cat_name"`
	UnitShort  string `json:"unit_short"`
	ReqQty     Qty    `json:"req_qty"`
}
