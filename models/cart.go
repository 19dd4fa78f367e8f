package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CartLine is one add-to-cart action. Lines are never merged. ProductID and
// Quantity hold whatever the client sent.
type CartLine struct {
	ProductID CartValue `json:"productoId" db:"product_id"`
	Quantity  CartValue `json:"cantidad" db:"quantity"`
	UserID    int64     `json:"usuarioId" db:"user_id"`
	AddedAt   time.Time `json:"fecha" db:"added_at"`
}

// CartValue is a request value kept verbatim as JSON text. An empty value
// encodes as null.
type CartValue []byte

// NewCartValue encodes v, which must be a plain JSON value (number, string,
// bool or nil).
func NewCartValue(v interface{}) CartValue {
	b, err := json.Marshal(v)
	if err != nil {
		return CartValue("null")
	}
	return CartValue(b)
}

func (v CartValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

func (v *CartValue) UnmarshalJSON(b []byte) error {
	*v = append(CartValue(nil), b...)
	return nil
}

// Scan implements sql.Scanner.
func (v *CartValue) Scan(src interface{}) error {
	switch t := src.(type) {
	case nil:
		*v = nil
	case []byte:
		*v = append(CartValue(nil), t...)
	case string:
		*v = CartValue(t)
	default:
		return fmt.Errorf("cannot scan %T into CartValue", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (v CartValue) Value() (driver.Value, error) {
	b, _ := v.MarshalJSON()
	return string(b), nil
}

// String renders the value for display: strings unquoted, anything else as
// its JSON text, null as "".
func (v CartValue) String() string {
	if v.IsNull() {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}

func (v CartValue) IsNull() bool {
	trimmed := bytes.TrimSpace(v)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Number reads v as a JSON number or a numeric string.
func (v CartValue) Number() (float64, bool) {
	var decoded interface{}
	if err := json.Unmarshal(v, &decoded); err != nil {
		return 0, false
	}
	switch t := decoded.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Empty reports whether v is absent, null, false, "" or a numeric zero.
func (v CartValue) Empty() bool {
	if v.IsNull() {
		return true
	}
	var decoded interface{}
	if err := json.Unmarshal(v, &decoded); err != nil {
		return false
	}
	switch t := decoded.(type) {
	case bool:
		return !t
	case string:
		return t == ""
	case float64:
		return t == 0
	default:
		return false
	}
}

// CartItem is a cart line joined with its catalog product for rendering.
// Product is the zero value when the id is not in the catalog.
type CartItem struct {
	Line     CartLine
	Product  Product
	Subtotal int64
}

// CartView is what the cart and payment pages render.
type CartView struct {
	Items []CartItem
	Total int64
}

// AddToCartResponse is the JSON body of a successful POST /agregar-carrito.
type AddToCartResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	TotalItems int    `json:"totalItems"`
}

// ErrorResponse is the JSON body of a failed JSON request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
