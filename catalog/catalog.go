// Package catalog holds the static product list of the shop.
package catalog

import "mascotas-shop/models"

var products = []models.Product{
	{
		ID:          1,
		Name:        "Felix Surtido Precio Especial x 8 Sobres",
		Price:       20462,
		Category:    "Alimento",
		Species:     "Gatos",
		Description: "Alimento húmedo para gatos adultos, variedad de sabores",
		Image:       "/static/images/productos/gato1.svg",
	},
	{
		ID:          2,
		Name:        "Hills Prescription Diet Gatos Digestive Care i/d Lata 5.5 Oz",
		Price:       16133,
		Category:    "Alimento",
		Species:     "Gatos",
		Description: "Alimento veterinario para problemas digestivos",
		Image:       "/static/images/productos/gato2.svg",
	},
	{
		ID:          3,
		Name:        "Royal Canin Mini Adult para Perros Pequeños",
		Price:       45200,
		Category:    "Alimento",
		Species:     "Perros",
		Description: "Alimento seco para perros pequeños adultos",
		Image:       "/static/images/productos/perro1.svg",
	},
	{
		ID:          4,
		Name:        "Cama Ortopédica para Perros Grandes",
		Price:       89900,
		Category:    "Accesorios",
		Species:     "Perros",
		Description: "Cama ortopédica con memory foam, tamaño grande",
		Image:       "/static/images/productos/perro2.svg",
	},
	{
		ID:          5,
		Name:        "Juguete Interactivo para Gatos con Hierba Gatera",
		Price:       25400,
		Category:    "Juguetes",
		Species:     "Gatos",
		Description: "Juguete con compartimento para hierba gatera",
		Image:       "/static/images/productos/gato3.svg",
	},
	{
		ID:          6,
		Name:        "Correa Retráctil para Perros 5m",
		Price:       38500,
		Category:    "Accesorios",
		Species:     "Perros",
		Description: "Correa retráctil de 5 metros, resistente al agua",
		Image:       "/static/images/productos/perro3.svg",
	},
	{
		ID:          7,
		Name:        "Arena Aglomerante para Gatos 10kg",
		Price:       42300,
		Category:    "Higiene",
		Species:     "Gatos",
		Description: "Arena aglomerante con control de olores",
		Image:       "/static/images/productos/gato4.svg",
	},
	{
		ID:          8,
		Name:        "Shampoo Antipulgas para Perros 500ml",
		Price:       28700,
		Category:    "Higiene",
		Species:     "Perros",
		Description: "Shampoo antipulgas y garrapatas, pH balanceado",
		Image:       "/static/images/productos/perro4.svg",
	},
	{
		ID:          9,
		Name:        "Transportadora para Mascotas Tamaño Mediano",
		Price:       75600,
		Category:    "Accesorios",
		Species:     "Ambos",
		Description: "Transportadora ventilada, fácil de limpiar",
		Image:       "/static/images/productos/ambos1.svg",
	},
	{
		ID:          10,
		Name:        "Comedero Automático para Mascotas",
		Price:       112000,
		Category:    "Accesorios",
		Species:     "Ambos",
		Description: "Comedero automático programable, 4 comidas diarias",
		Image:       "/static/images/productos/ambos2.svg",
	},
}

// Products returns a copy of the catalog in id order.
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// Find returns the product with the given id.
func Find(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
