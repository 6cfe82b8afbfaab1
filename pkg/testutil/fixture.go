package testutil

import (
	"context"
	"database/sql"

	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/internal/repository"
)

var (
	User1 = entity.User{
		Base:     entity.Base{ID: "user1"},
		KakaoID:  1001,
		Nickname: "gamza",
	}

	User2 = entity.User{
		Base:     entity.Base{ID: "user2"},
		KakaoID:  1002,
		Nickname: "goguma",
	}

	// DrawResult1100 is a draw every fixture record below refers to.
	DrawResult1100 = entity.DrawResult{
		DrawNumber:     1100,
		WinningNumbers: []int{4, 9, 13, 18, 24, 33},
		BonusNumber:    40,
	}

	Purchase1 = entity.Purchase{
		Base:       entity.Base{ID: "purchase1"},
		UserID:     User1.ID,
		DrawNumber: DrawResult1100.DrawNumber,
		Combinations: entity.Array[entity.Combination]{
			// 3rd tier: five matches without the bonus.
			{Label: "A", Numbers: []int{4, 9, 13, 18, 24, 45}},
			{Label: "B", Numbers: []int{1, 2, 3, 5, 6, 7}},
		},
		PrizeStatus: entity.PrizeStatusUnconfirmed,
	}

	Recommendation1 = entity.Recommendation{
		Base:   entity.Base{ID: "recommendation1"},
		UserID: User1.ID,
		Combinations: entity.Array[entity.Combination]{
			{Label: "A", Numbers: []int{10, 20, 30, 40, 41, 42}},
		},
		PrizeStatus: entity.PrizeStatusUnconfirmed,
	}

	Recommendation2 = entity.Recommendation{
		Base:       entity.Base{ID: "recommendation2"},
		UserID:     User1.ID,
		DrawNumber: sql.NullInt64{Valid: true, Int64: int64(DrawResult1100.DrawNumber)},
		Combinations: entity.Array[entity.Combination]{
			// 5th tier: exactly three matches.
			{Label: "A", Numbers: []int{4, 9, 13, 40, 41, 42}},
		},
		PrizeStatus: entity.PrizeStatusUnconfirmed,
	}
)

// CreateFixtureDb inserts the sample records above into the database
// carried by ctx. Values are copied so tests can mutate results freely.
func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertDrawResults(ctx)
	insertPurchases(ctx)
	insertRecommendations(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, user := range []entity.User{User1, User2} {
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func insertDrawResults(ctx context.Context) {
	drawResultRepo := repository.NewDrawResultRepository()
	result := DrawResult1100
	if err := drawResultRepo.Upsert(ctx, &result); err != nil {
		panic(err)
	}
}

func insertPurchases(ctx context.Context) {
	purchaseRepo := repository.NewPurchaseRepository()
	purchase := Purchase1
	if err := purchaseRepo.Create(ctx, &purchase); err != nil {
		panic(err)
	}
}

func insertRecommendations(ctx context.Context) {
	recommendationRepo := repository.NewRecommendationRepository()
	for _, r := range []entity.Recommendation{Recommendation1, Recommendation2} {
		recommendation := r
		if err := recommendationRepo.Create(ctx, &recommendation); err != nil {
			panic(err)
		}
	}
}
