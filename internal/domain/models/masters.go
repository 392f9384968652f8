package models

// Masjid is a delivery location.
type Masjid struct {
	MasjidName string `json:"masjid_name" binding:"required"`
	Address    string `json:"address"`
	City       string `json:"city"`
	CreatedBy  string `json:"created_by"`
}

// ItemCategory groups items for requirement and receipt screens.
type ItemCategory struct {
	CatName   string `json:"cat_name" binding:"required"`
	CreatedBy string `json:"created_by"`
}

// Unit is a measurement unit master record.
type Unit struct {
	UnitName  string `json:"unit_name" binding:"required"`
	UnitShort string `json:"unit_short" binding:"required"`
	CreatedBy string `json:"created_by"`
}

// Item references its category and unit by name, matching the backend's
// denormalized shape.
type Item struct {
	ItemName  string `json:"item_name" binding:"required"`
	CatName   string `json:"cat_name" binding:"required"`
	UnitShort string `json:"unit_short" binding:"required"`
	CreatedBy string `json:"created_by"`
}

// Supplier is a raw material supplier.
type Supplier struct {
	SupName   string `json:"sup_name" binding:"required"`
	SupAdd    string `json:"sup_add"`
	SupCity   string `json:"sup_city"`
	SupMobile string `json:"sup_mobile"`
	CreatedBy string `json:"created_by"`
}
