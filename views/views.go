// Package views renders the shop's server-side HTML pages.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"

	"mascotas-shop/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names, one template file each.
const (
	PageLogin    = "login"
	PageRegister = "register"
	PageProducts = "products"
	PageCheckout = "checkout"
	PagePayment  = "payment"
)

var pages = []string{PageLogin, PageRegister, PageProducts, PageCheckout, PagePayment}

// PageData is the data every page template receives.
type PageData struct {
	Title    string
	Page     string
	Error    string
	Success  string
	User     *models.SessionUser
	Products []models.Product
	Cart     models.CartView
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses the layout together with every page.
func New() (*Renderer, error) {
	funcs := template.FuncMap{"price": FormatPrice}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

// Render writes the named page. The page is rendered to a buffer first so a
// template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, page string, data PageData) error {
	t, ok := r.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	data.Page = page

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static returns the embedded stylesheet and product images.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// FormatPrice renders minor units with dot thousands separators, e.g. 20462 -> "$20.462".
func FormatPrice(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var out []byte
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digits[i])
	}
	return sign + "$" + string(out)
}
