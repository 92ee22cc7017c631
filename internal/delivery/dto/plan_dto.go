package dto

import "github.com/shopspring/decimal"

type PlanResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Services    []string        `json:"services"`
	Popular     bool            `json:"popular"`
	PaymentLink string          `json:"payment_link"`
}

type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
}
