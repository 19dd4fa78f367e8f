package models

// Product is a catalog entry. Price is in minor currency units.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"nombre"`
	Price       int64  `json:"precio"`
	Category    string `json:"categoria"`
	Species     string `json:"tipo"`
	Description string `json:"descripcion"`
	Image       string `json:"imagen"`
}
