package model

type Purchase struct {
	ID           string        `json:"id"`
	DrawNumber   int           `json:"draw_number"`
	Combinations []Combination `json:"combinations"`
	PrizeStatus  string        `json:"prize_status"`
	CreatedAt    string        `json:"created_at"`
}

// Ticket decoding
type DecodeTicketRequest struct {
	QRURL string `json:"qr_url"`
}

type DecodeTicketResponse struct {
	DrawNumber   int           `json:"draw_number"`
	Combinations []Combination `json:"combinations"`
	UsedNumbers  []int         `json:"used_numbers"`
}

// Purchases
type CreatePurchaseRequest struct {
	QRURL string `json:"qr_url"`
}

type CreatePurchaseResponse struct {
	Purchase Purchase `json:"purchase"`
}

type GetPurchasesRequest struct {
	DrawNumber int `form:"draw_number"`
}

type GetPurchasesResponse struct {
	Purchases []Purchase `json:"purchases"`
}

type DeletePurchasesRequest struct {
	IDs []string `json:"ids"`
}

type DeletePurchasesResponse struct {
	Deleted int64 `json:"deleted"`
}

// Exclusion-based recommendation
type RecommendExcludingRequest struct {
	QRURL   string `json:"qr_url"`
	Numbers []int  `json:"numbers"`
	Count   int    `json:"count"`
	Save    bool   `json:"save"`
}

type RecommendExcludingResponse struct {
	ExcludedNumbers []int          `json:"excluded_numbers"`
	Recommendation  Recommendation `json:"recommendation"`
}
