package handlers

import (
	"context"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/planittesting/jupiter-e2e/internal/logger"
	"github.com/planittesting/jupiter-e2e/internal/models"
	"github.com/planittesting/jupiter-e2e/internal/services"
)

// LayoutTemplate wraps every page with the navigation bar
const LayoutTemplate = "layout.html"

// ProductView is a product as the shop page renders it
type ProductView struct {
	ID       int
	Name     string
	Price    string
	ImageURL string
}

// CartLineView is a cart row as the cart page renders it
type CartLineView struct {
	ProductID int
	Name      string
	ImageURL  string
	Price     string
	Quantity  int
	Subtotal  string
}

// CartView is the cart page content
type CartView struct {
	Lines []CartLineView
	Total string
}

// PageData is passed to every page template
type PageData struct {
	Title     string
	Active    string
	CartCount int
	Products  []ProductView
	Cart      CartView
}

// pageHandler renders one page inside the layout
type pageHandler struct {
	template *template.Template
	title    string
	active   string
	carts    services.CartService
	fill     func(ctx context.Context, cart *models.Cart, data *PageData)
}

func newPageHandler(templatesDir, page, title, active string, carts services.CartService) (*pageHandler, error) {
	tmpl, err := template.ParseFiles(
		filepath.Join(templatesDir, LayoutTemplate),
		filepath.Join(templatesDir, page),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", page)
	}

	return &pageHandler{
		template: tmpl,
		title:    title,
		active:   active,
		carts:    carts,
	}, nil
}

// ServeHTTP handles GET requests for the page
func (h *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	cart, err := h.carts.GetCart(ctx, SessionID(w, r))
	if err != nil {
		logger.Get(ctx).Error("load cart", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := PageData{
		Title:     h.title,
		Active:    h.active,
		CartCount: cart.Count(),
	}
	if h.fill != nil {
		h.fill(ctx, cart, &data)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.ExecuteTemplate(w, LayoutTemplate, data); err != nil {
		logger.Get(ctx).Error("render page", zap.String("page", h.title), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}

// NewHomeHandler creates the handler for GET /
func NewHomeHandler(templatesDir string, carts services.CartService) (http.Handler, error) {
	return newPageHandler(templatesDir, "home.html", "Home", "home", carts)
}

// NewContactHandler creates the handler for GET /contact
func NewContactHandler(templatesDir string, carts services.CartService) (http.Handler, error) {
	return newPageHandler(templatesDir, "contact.html", "Contact", "contact", carts)
}

// NewShopHandler creates the handler for GET /shop
func NewShopHandler(templatesDir string, carts services.CartService) (http.Handler, error) {
	h, err := newPageHandler(templatesDir, "shop.html", "Shop", "shop", carts)
	if err != nil {
		return nil, err
	}

	h.fill = func(_ context.Context, _ *models.Cart, data *PageData) {
		for _, p := range carts.Catalog().Products() {
			data.Products = append(data.Products, ProductView{
				ID:       p.ID,
				Name:     p.Name,
				Price:    p.Price.String(),
				ImageURL: p.ImageURL,
			})
		}
	}
	return h, nil
}

// NewCartHandler creates the handler for GET /cart
func NewCartHandler(templatesDir string, carts services.CartService) (http.Handler, error) {
	h, err := newPageHandler(templatesDir, "cart.html", "Cart", "cart", carts)
	if err != nil {
		return nil, err
	}

	h.fill = func(_ context.Context, cart *models.Cart, data *PageData) {
		data.Cart = cartView(cart)
	}
	return h, nil
}

func cartView(cart *models.Cart) CartView {
	view := CartView{Total: cart.Total().Plain()}
	for _, item := range cart.Items {
		view.Lines = append(view.Lines, CartLineView{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			ImageURL:  item.Product.ImageURL,
			Price:     item.Product.Price.String(),
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal().String(),
		})
	}
	return view
}
