package domain

import (
	"context"

	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/internal/model"
	"github.com/gamzalab/lotto-backend/internal/repository"
	"github.com/gamzalab/lotto-backend/pkg/errorx"
	"github.com/gamzalab/lotto-backend/pkg/lotto"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
	"github.com/google/uuid"
)

type RecommendationDomain interface {
	Generate(context.Context, *model.GenerateNumbersRequest) (*model.GenerateNumbersResponse, error)
	GetList(context.Context, *model.GetRecommendationsRequest) (*model.GetRecommendationsResponse, error)
	Delete(context.Context, *model.DeleteRecommendationsRequest) (*model.DeleteRecommendationsResponse, error)
}

type recommendationDomain struct {
	recommendationRepo repository.RecommendationRepository
	generator          *lotto.Generator
}

func NewRecommendationDomain(
	recommendationRepo repository.RecommendationRepository,
	generator *lotto.Generator,
) RecommendationDomain {
	return &recommendationDomain{
		recommendationRepo: recommendationRepo,
		generator:          generator,
	}
}

func (d *recommendationDomain) Generate(
	ctx context.Context, req *model.GenerateNumbersRequest,
) (*model.GenerateNumbersResponse, error) {
	count := req.Count
	if count == 0 {
		count = 1
	}

	if count < 1 || count > lotto.MaxCombinations {
		return nil, errorx.New(errorx.BadRequest,
			"Require a combination count between 1 and %d", lotto.MaxCombinations)
	}

	bundle, err := d.generator.Generate(count, nil)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate combinations: %v", err)
		return nil, errorx.Unknown
	}

	recommendation := &entity.Recommendation{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       xcontext.RequestUserID(ctx),
		Combinations: entity.CombinationsFromBundle(bundle),
		PrizeStatus:  entity.PrizeStatusUnconfirmed,
	}

	if err := d.recommendationRepo.Create(ctx, recommendation); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create recommendation: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GenerateNumbersResponse{
		Recommendation: model.ConvertRecommendation(recommendation),
	}, nil
}

func (d *recommendationDomain) GetList(
	ctx context.Context, req *model.GetRecommendationsRequest,
) (*model.GetRecommendationsResponse, error) {
	sortBy := repository.RecommendationSortNewest
	switch req.SortBy {
	case "", "newest":
	case "oldest":
		sortBy = repository.RecommendationSortOldest
	case "best":
		sortBy = repository.RecommendationSortBest
	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid sort option %s", req.SortBy)
	}

	recommendations, err := d.recommendationRepo.GetByUserID(
		ctx, xcontext.RequestUserID(ctx), sortBy)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get recommendations: %v", err)
		return nil, errorx.Unknown
	}

	modelRecommendations := []model.Recommendation{}
	for i := range recommendations {
		modelRecommendations = append(modelRecommendations,
			model.ConvertRecommendation(&recommendations[i]))
	}

	return &model.GetRecommendationsResponse{Recommendations: modelRecommendations}, nil
}

func (d *recommendationDomain) Delete(
	ctx context.Context, req *model.DeleteRecommendationsRequest,
) (*model.DeleteRecommendationsResponse, error) {
	if len(req.IDs) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Require at least one id")
	}

	deleted, err := d.recommendationRepo.DeleteByIDs(ctx, xcontext.RequestUserID(ctx), req.IDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete recommendations: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteRecommendationsResponse{Deleted: deleted}, nil
}
