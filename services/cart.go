package services

import (
	"context"
	"math"
	"time"

	"mascotas-shop/catalog"
	"mascotas-shop/models"
	"mascotas-shop/repositories"
)

// DefaultQuantity is used when an add-to-cart request carries no quantity.
const DefaultQuantity = 1

// CartService appends to and reads session carts.
type CartService struct {
	carts repositories.CartRepository
	now   func() time.Time
}

func NewCartService(carts repositories.CartRepository) *CartService {
	return &CartService{carts: carts, now: time.Now}
}

// AddInput carries the productoId and cantidad of a request as sent.
type AddInput struct {
	ProductID models.CartValue
	Quantity  models.CartValue
}

// Add appends one line to the session's cart and returns the line count.
// Lines for the same product are never merged and values are not validated.
// An empty quantity (absent, null, false, "" or 0) becomes DefaultQuantity.
func (s *CartService) Add(ctx context.Context, sessionID string, userID int64, in AddInput) (int, error) {
	quantity := in.Quantity
	if quantity.Empty() {
		quantity = models.NewCartValue(DefaultQuantity)
	}
	productID := in.ProductID
	if len(productID) == 0 {
		productID = models.NewCartValue(nil)
	}

	return s.carts.Append(ctx, sessionID, models.CartLine{
		ProductID: productID,
		Quantity:  quantity,
		UserID:    userID,
		AddedAt:   s.now(),
	})
}

// Lines returns the raw cart of a session.
func (s *CartService) Lines(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	return s.carts.List(ctx, sessionID)
}

// View joins the session's lines with the catalog for rendering.
func (s *CartService) View(ctx context.Context, sessionID string) (models.CartView, error) {
	lines, err := s.carts.List(ctx, sessionID)
	if err != nil {
		return models.CartView{}, err
	}

	view := models.CartView{Items: make([]models.CartItem, 0, len(lines))}
	for _, line := range lines {
		item := models.CartItem{Line: line}
		if p, ok := lookupProduct(line.ProductID); ok {
			item.Product = p
			if q, ok := line.Quantity.Number(); ok {
				item.Subtotal = int64(math.Round(float64(p.Price) * q))
			}
		}
		view.Total += item.Subtotal
		view.Items = append(view.Items, item)
	}
	return view, nil
}

// lookupProduct finds the catalog entry for a numeric (or numeric string) id.
func lookupProduct(id models.CartValue) (models.Product, bool) {
	n, ok := id.Number()
	if !ok || n != math.Trunc(n) {
		return models.Product{}, false
	}
	return catalog.Find(int(n))
}

// Clear drops the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.carts.Delete(ctx, sessionID)
}
