package handlers

type CartItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	Total      string             `json:"total"`
	TotalLabel string             `json:"total_label"`
	Count      int                `json:"count"`
}

type QuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type SearchTermRequest struct {
	Term *string `json:"term"`
}

type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

type SearchResponse struct {
	Term     string            `json:"term"`
	Category string            `json:"category"`
	Shown    int               `json:"shown"`
	Total    int               `json:"total"`
	Products []ProductResponse `json:"products"`
}
