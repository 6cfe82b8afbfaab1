package model

type Combination struct {
	Label   string `json:"label"`
	Numbers []int  `json:"numbers"`
}

type Recommendation struct {
	ID           string        `json:"id"`
	DrawNumber   int           `json:"draw_number,omitempty"`
	Combinations []Combination `json:"combinations"`
	PrizeStatus  string        `json:"prize_status"`
	CreatedAt    string        `json:"created_at"`
}

// Generate numbers
type GenerateNumbersRequest struct {
	Count int `json:"count"`
}

type GenerateNumbersResponse struct {
	Recommendation Recommendation `json:"recommendation"`
}

// Recommendation history
type GetRecommendationsRequest struct {
	SortBy string `form:"sort"`
}

type GetRecommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

type DeleteRecommendationsRequest struct {
	IDs []string `json:"ids"`
}

type DeleteRecommendationsResponse struct {
	Deleted int64 `json:"deleted"`
}
