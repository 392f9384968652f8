package models

// DeliverySchedule plans which recipe type is cooked on a date.
type DeliverySchedule struct {
	SchdDate   string `json:"schd_date" binding:"required"`
	RecipeType string `json:"recipe_type" binding:"required"`
	RecipeCode string `json:"recipe_code"`
}

// DeliveryRequirement is one location's packet requirement for a date.
type DeliveryRequirement struct {
	ReqDate    string `json:"req_date" binding:"required"`
	MasjidName string `json:"masjid_name" binding:"required"`
	ReqQty     Qty    `json:"req_qty"`
}

// DayRequirementHeader aggregates the requirement for a date and recipe type.
type DayRequirementHeader struct {
	DayReqDate string `json:"day_req_date"`
	RecipeType string `json:"recipe_type"`
	RecipeCode string `json:"recipe_code"`
	DayTotReq  Qty    `json:"day_tot_req"`
}

// DayRequirementLine is a computed ingredient quantity for a day requirement.
type DayRequirementLine struct {
	DayReqDate string `json:"day_req_date"`
	RecipeCode string `json:"recipe_code"`
	ItemName   string `json:"item_name"`
	CatName    string `json:"cat_name"`
	UnitShort  string `json:"unit_short"`
	DayReqQty  Qty    `json:"day_req_qty"`
}

// MaterialReceipt records raw material received from a supplier.
type MaterialReceipt struct {
	MatRecDate string `json:"mat_rec_date" binding:"required"`
	SupName    string `json:"sup_name" binding:"required"`
	CatName    string `json:"cat_name"`
	ItemName   string `json:"item_name" binding:"required"`
	UnitShort  string `json:"unit_short"`
	MatRecQty  Qty    `json:"mat_rec_qty"`
}

// Packing records how many packets were packed against a day's requirement.
type Packing struct {
	PackDate   string `json:"pack_date" binding:"required"`
	RecipeType string `json:"recipe_type" binding:"required"`
	ReqQty     Qty    `json:"req_qty"`
	AvblQty    Qty    `json:"avbl_qty"`
	PackQty    Qty    `json:"pack_qty"`
}

// Allocation assigns packed quantity to a location.
type Allocation struct {
	AllocDate  string `json:"alloc_date" binding:"required"`
	MasjidName string `json:"masjid_name" binding:"required"`
	RecipeType string `json:"recipe_type"`
	ReqQty     Qty    `json:"req_qty"`
	AvblQty    Qty    `json:"avbl_qty"`
	AllocQty   Qty    `json:"alloc_qty"`
}

// Delivery confirms packets handed over at a location.
type Delivery struct {
	Location     string `json:"location" binding:"required"`
	DeliveryDate string `json:"delivery_date" binding:"required"`
	DeliveryQty  Qty    `json:"delivery_qty"`
	DeliveryBy   string `json:"delivery_by"`
}
