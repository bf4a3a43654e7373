package dto

// ProductResponse salida de un producto (GET /product/:code).
type ProductResponse struct {
	PrdID int64  `json:"PRD_ID"`
	Code  string `json:"CODE"`
	Name  string `json:"NAME"`
	Price int64  `json:"PRICE"`
}
