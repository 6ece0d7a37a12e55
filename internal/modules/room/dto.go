package room

type CreateRoomRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	RegularPrice    float64  `json:"regularPrice"`
	DiscountedPrice *float64 `json:"discountedPrice"`
	BedType         string   `json:"bedType"`
	WaterHeater     bool     `json:"waterHeater"`
	TV              bool     `json:"hasTV"`
	DSTV            bool     `json:"hasDSTV"`
	AC              bool     `json:"hasAC"`
	Fridge          bool     `json:"hasFridge"`
	Sofa            bool     `json:"hasSofa"`
	Offer           bool     `json:"offer"`
	ImageURLs       []string `json:"imageURLs"`
	IsAvailable     *bool    `json:"isAvailable"`
}

// UpdateRoomRequest is a partial payload: nil fields are left unchanged.
type UpdateRoomRequest struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	RegularPrice    *float64  `json:"regularPrice"`
	DiscountedPrice *float64  `json:"discountedPrice"`
	BedType         *string   `json:"bedType"`
	WaterHeater     *bool     `json:"waterHeater"`
	TV              *bool     `json:"hasTV"`
	DSTV            *bool     `json:"hasDSTV"`
	AC              *bool     `json:"hasAC"`
	Fridge          *bool     `json:"hasFridge"`
	Sofa            *bool     `json:"hasSofa"`
	Offer           *bool     `json:"offer"`
	ImageURLs       *[]string `json:"imageURLs"`
	IsAvailable     *bool     `json:"isAvailable"`
}
