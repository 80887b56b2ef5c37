package dto

import (
	"time"

	"github.com/GlebRadaev/dealmap/internal/domain"
)

type CreateDealRequestDTO struct {
	BusinessID      int            `json:"businessId" example:"1"`
	Title           string         `json:"title" example:"Gutter cleaning, half price"`
	Description     string         `json:"description" example:"Full gutter clean for row houses"`
	ServiceType     string         `json:"serviceType" example:"home-maintenance"`
	OriginalPrice   int            `json:"originalPrice" example:"10000"`
	DiscountPercent int            `json:"discountPercent" example:"25"`
	MinCustomers    int            `json:"minCustomers" example:"3"`
	Location        domain.Point   `json:"location"`
	ServiceArea     domain.Polygon `json:"serviceArea"`
	StartDate       time.Time      `json:"startDate" example:"2025-01-01T00:00:00Z"`
	EndDate         time.Time      `json:"endDate" example:"2025-01-31T23:59:00Z"`
}

type DealResponseDTO struct {
	ID               int            `json:"id" example:"1"`
	BusinessID       int            `json:"businessId" example:"1"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	ServiceType      string         `json:"serviceType"`
	OriginalPrice    int            `json:"originalPrice" example:"10000"`
	DiscountPercent  int            `json:"discountPercent" example:"25"`
	DiscountedPrice  int            `json:"discountedPrice" example:"7500"`
	MinCustomers     int            `json:"minCustomers" example:"3"`
	CurrentCustomers int            `json:"currentCustomers" example:"0"`
	Location         domain.Point   `json:"location"`
	ServiceArea      domain.Polygon `json:"serviceArea"`
	StartDate        time.Time      `json:"startDate"`
	EndDate          time.Time      `json:"endDate"`
	Status           string         `json:"status" example:"pending"`
}

func NewDealResponse(deal *domain.Deal) DealResponseDTO {
	return DealResponseDTO{
		ID:               deal.ID,
		BusinessID:       deal.BusinessID,
		Title:            deal.Title,
		Description:      deal.Description,
		ServiceType:      deal.ServiceType,
		OriginalPrice:    deal.OriginalPrice,
		DiscountPercent:  deal.DiscountPercent,
		DiscountedPrice:  deal.DiscountedPrice(),
		MinCustomers:     deal.MinCustomers,
		CurrentCustomers: deal.CurrentCustomers,
		Location:         deal.Location,
		ServiceArea:      deal.ServiceArea,
		StartDate:        deal.StartDate,
		EndDate:          deal.EndDate,
		Status:           deal.Status,
	}
}

func NewDealResponses(deals []domain.Deal) []DealResponseDTO {
	responses := make([]DealResponseDTO, 0, len(deals))
	for i := range deals {
		responses = append(responses, NewDealResponse(&deals[i]))
	}
	return responses
}
