package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/nikolayk812/checkout/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

type views struct {
	templates *template.Template
}

func newViews() (*views, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("template.ParseFS: %w", err)
	}

	return &views{templates: templates}, nil
}

func (v *views) render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := v.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("templates.ExecuteTemplate[%s]: %w", name, err)
	}

	return nil
}

type itemView struct {
	ID           string
	Name         string
	Description  string
	DisplayPrice string
}

func toItemView(item domain.Item) itemView {
	return itemView{
		ID:           item.ID.String(),
		Name:         item.Name,
		Description:  item.Description,
		DisplayPrice: item.DisplayPrice(),
	}
}

type orderView struct {
	ID     string
	Status string
	Items  []itemView

	Subtotal       string
	DiscountName   string
	DiscountAmount string
	TaxName        string
	TaxAmount      string
	Total          string
}

func toOrderView(order domain.Order) orderView {
	view := orderView{
		ID:     order.ID.String(),
		Status: string(order.Status),
	}

	for _, item := range order.Items {
		view.Items = append(view.Items, toItemView(item))
	}

	cur := order.Currency()

	view.Subtotal = domain.Money{Amount: order.Subtotal(), Currency: cur}.Display()
	view.Total = domain.Money{Amount: order.Total(), Currency: cur}.Display()

	if order.Discount != nil && order.Discount.Active {
		view.DiscountName = order.Discount.String()
		view.DiscountAmount = domain.Money{Amount: order.DiscountAmount(), Currency: cur}.Display()
	}

	if order.Tax != nil && order.Tax.Active {
		view.TaxName = order.Tax.String()
		view.TaxAmount = domain.Money{Amount: order.TaxAmount(), Currency: cur}.Display()
	}

	return view
}
