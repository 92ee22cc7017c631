package entity

import "github.com/shopspring/decimal"

// SubscriptionPlan is one of the fixed monthly plans sold by the shop.
// Checkout happens on the payment provider, so the catalog is static.
type SubscriptionPlan struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Services    []string        `json:"services"`
	Popular     bool            `json:"popular"`
	PaymentLink string          `json:"payment_link"`
}

// SubscriptionPlans is the plan catalog, cheapest first. Prices are in BRL.
var SubscriptionPlans = []SubscriptionPlan{
	{
		ID:          "basic",
		Name:        "Básico",
		Price:       decimal.NewFromInt(100),
		Services:    []string{"Corte de Cabelo"},
		PaymentLink: "https://buy.stripe.com/test_bJe28k6zn2ea4GG7eB1kA00",
	},
	{
		ID:          "standard",
		Name:        "Padrão",
		Price:       decimal.NewFromInt(150),
		Services:    []string{"Corte de Cabelo", "Barba"},
		Popular:     true,
		PaymentLink: "https://buy.stripe.com/test_cNi7sEbTHaKGflkcyV1kA01",
	},
	{
		ID:          "premium",
		Name:        "Premium",
		Price:       decimal.NewFromInt(165),
		Services:    []string{"Corte de Cabelo", "Barba", "Sobrancelha"},
		PaymentLink: "https://buy.stripe.com/test_fZu5kw1f31a6gpodCZ1kA02",
	},
}
