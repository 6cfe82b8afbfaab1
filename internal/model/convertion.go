package model

import (
	"time"

	"github.com/gamzalab/lotto-backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func ConvertUser(user *entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:        user.ID,
		Nickname:  user.Nickname,
		CreatedAt: user.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertCombinations(combinations entity.Array[entity.Combination]) []Combination {
	modelCombinations := []Combination{}
	for _, c := range combinations {
		modelCombinations = append(modelCombinations, Combination{Label: c.Label, Numbers: c.Numbers})
	}

	return modelCombinations
}

func ConvertRecommendation(recommendation *entity.Recommendation) Recommendation {
	if recommendation == nil {
		return Recommendation{}
	}

	drawNumber := 0
	if recommendation.DrawNumber.Valid {
		drawNumber = int(recommendation.DrawNumber.Int64)
	}

	return Recommendation{
		ID:           recommendation.ID,
		DrawNumber:   drawNumber,
		Combinations: ConvertCombinations(recommendation.Combinations),
		PrizeStatus:  recommendation.PrizeStatus,
		CreatedAt:    recommendation.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertPurchase(purchase *entity.Purchase) Purchase {
	if purchase == nil {
		return Purchase{}
	}

	return Purchase{
		ID:           purchase.ID,
		DrawNumber:   purchase.DrawNumber,
		Combinations: ConvertCombinations(purchase.Combinations),
		PrizeStatus:  purchase.PrizeStatus,
		CreatedAt:    purchase.CreatedAt.Format(DefaultTimeLayout),
	}
}
