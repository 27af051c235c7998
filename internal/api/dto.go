package api

import "github.com/aumai/kisanmitra/internal/models"

// PriceListResponse wraps price query results.
type PriceListResponse struct {
	Prices []models.PriceRecord `json:"prices"`
	Total  int                  `json:"total"`
}

// PestListResponse wraps catalogue listings and identification results.
type PestListResponse struct {
	Pests []models.Pest `json:"pests"`
	Total int           `json:"total"`
}

// AskRequest is the request body for POST /ask.
type AskRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
	Location string `json:"location"`
}
