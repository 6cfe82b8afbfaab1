package model

type User struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	CreatedAt string `json:"created_at"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}
