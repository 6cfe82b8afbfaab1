package model

// Draw results
type GetResultRequest struct {
	DrawNumber int `form:"draw_number"`
}

type GetResultResponse struct {
	DrawNumber     int    `json:"draw_number"`
	WinningNumbers []int  `json:"winning_numbers"`
	BonusNumber    int    `json:"bonus_number"`
	Source         string `json:"source"`
}

// Bulk prize check
type CheckResultsRequest struct{}

type CheckResultsResponse struct {
	Checked int `json:"checked"`
	Winning int `json:"winning"`
	Losing  int `json:"losing"`

	// Pending counts records whose draw has no published result yet.
	Pending int `json:"pending"`
}

// Per-draw check
type CheckDrawRequest struct {
	DrawNumber int `form:"draw_number"`
}

type CheckedCombination struct {
	Label   string `json:"label"`
	Numbers []int  `json:"numbers"`
	Tier    string `json:"tier"`
}

type CheckedRecord struct {
	ID           string               `json:"id"`
	Kind         string               `json:"kind"`
	Combinations []CheckedCombination `json:"combinations"`
	BestTier     string               `json:"best_tier"`
}

type CheckDrawResponse struct {
	DrawNumber     int             `json:"draw_number"`
	WinningNumbers []int           `json:"winning_numbers"`
	BonusNumber    int             `json:"bonus_number"`
	Records        []CheckedRecord `json:"records"`
}
