package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"mascotas-shop/models"
	"mascotas-shop/services"
	"mascotas-shop/session"

	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"
)

// AddToCart handles POST /agregar-carrito. Accepts a JSON or form body with
// productoId and cantidad, stored as sent. Only an unreadable body is rejected.
func (h *ShopHandler) AddToCart(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(ctx)

	in, err := readAddInput(r)
	if err != nil {
		logRequest(ctx, "error", "Invalid add-to-cart body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Success: false, Error: msgInvalidBody})
		return
	}

	total, err := h.carts.Add(ctx, sess.ID, sess.User.ID, in)
	if err != nil {
		logRequest(ctx, "error", "Failed to add to cart", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError("Failed to add to cart"))
		return
	}

	logRequest(ctx, "info", "Product added to cart", zap.String("product_id", in.ProductID.String()), zap.Int("total_items", total))
	writeJSON(w, http.StatusOK, models.AddToCartResponse{
		Success:    true,
		Message:    msgAddedToCart,
		TotalItems: total,
	})
}

type addToCartBody struct {
	ProductID models.CartValue `json:"productoId"`
	Quantity  models.CartValue `json:"cantidad"`
}

func readAddInput(r *http.Request) (services.AddInput, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		if err := r.ParseForm(); err != nil {
			return services.AddInput{}, fmt.Errorf("parsing form: %w", err)
		}
		return services.AddInput{
			ProductID: formValue(r, "productoId"),
			Quantity:  formValue(r, "cantidad"),
		}, nil
	}

	var body addToCartBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return services.AddInput{}, fmt.Errorf("decoding body: %w", err)
	}
	return services.AddInput{ProductID: body.ProductID, Quantity: body.Quantity}, nil
}

// formValue returns the posted field as a JSON string, or nil when absent.
func formValue(r *http.Request, key string) models.CartValue {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return models.NewCartValue(values[0])
}
