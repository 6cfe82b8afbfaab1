package domain

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/internal/model"
	"github.com/gamzalab/lotto-backend/internal/repository"
	"github.com/gamzalab/lotto-backend/pkg/errorx"
	"github.com/gamzalab/lotto-backend/pkg/lotto"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type PurchaseDomain interface {
	DecodeTicket(context.Context, *model.DecodeTicketRequest) (*model.DecodeTicketResponse, error)
	Create(context.Context, *model.CreatePurchaseRequest) (*model.CreatePurchaseResponse, error)
	GetList(context.Context, *model.GetPurchasesRequest) (*model.GetPurchasesResponse, error)
	Delete(context.Context, *model.DeletePurchasesRequest) (*model.DeletePurchasesResponse, error)
	RecommendExcluding(context.Context, *model.RecommendExcludingRequest) (*model.RecommendExcludingResponse, error)
}

type purchaseDomain struct {
	purchaseRepo       repository.PurchaseRepository
	recommendationRepo repository.RecommendationRepository
	generator          *lotto.Generator
}

func NewPurchaseDomain(
	purchaseRepo repository.PurchaseRepository,
	recommendationRepo repository.RecommendationRepository,
	generator *lotto.Generator,
) PurchaseDomain {
	return &purchaseDomain{
		purchaseRepo:       purchaseRepo,
		recommendationRepo: recommendationRepo,
		generator:          generator,
	}
}

func (d *purchaseDomain) DecodeTicket(
	ctx context.Context, req *model.DecodeTicketRequest,
) (*model.DecodeTicketResponse, error) {
	ticket, err := decodeTicket(ctx, req.QRURL)
	if err != nil {
		return nil, err
	}

	return &model.DecodeTicketResponse{
		DrawNumber:   ticket.DrawNumber,
		Combinations: model.ConvertCombinations(entity.CombinationsFromBundle(ticket.Bundle)),
		UsedNumbers:  sortedUnion(ticket.Bundle),
	}, nil
}

func (d *purchaseDomain) Create(
	ctx context.Context, req *model.CreatePurchaseRequest,
) (*model.CreatePurchaseResponse, error) {
	ticket, err := decodeTicket(ctx, req.QRURL)
	if err != nil {
		return nil, err
	}

	purchase := &entity.Purchase{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       xcontext.RequestUserID(ctx),
		DrawNumber:   ticket.DrawNumber,
		Combinations: entity.CombinationsFromBundle(ticket.Bundle),
		PrizeStatus:  entity.PrizeStatusUnconfirmed,
	}

	if err := d.purchaseRepo.Create(ctx, purchase); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create purchase: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreatePurchaseResponse{Purchase: model.ConvertPurchase(purchase)}, nil
}

func (d *purchaseDomain) GetList(
	ctx context.Context, req *model.GetPurchasesRequest,
) (*model.GetPurchasesResponse, error) {
	var purchases []entity.Purchase
	var err error
	if req.DrawNumber != 0 {
		purchases, err = d.purchaseRepo.GetByUserIDAndDraw(
			ctx, xcontext.RequestUserID(ctx), req.DrawNumber)
	} else {
		purchases, err = d.purchaseRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	}

	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get purchases: %v", err)
		return nil, errorx.Unknown
	}

	modelPurchases := []model.Purchase{}
	for i := range purchases {
		modelPurchases = append(modelPurchases, model.ConvertPurchase(&purchases[i]))
	}

	return &model.GetPurchasesResponse{Purchases: modelPurchases}, nil
}

func (d *purchaseDomain) Delete(
	ctx context.Context, req *model.DeletePurchasesRequest,
) (*model.DeletePurchasesResponse, error) {
	if len(req.IDs) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Require at least one id")
	}

	deleted, err := d.purchaseRepo.DeleteByIDs(ctx, xcontext.RequestUserID(ctx), req.IDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete purchases: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeletePurchasesResponse{Deleted: deleted}, nil
}

func (d *purchaseDomain) RecommendExcluding(
	ctx context.Context, req *model.RecommendExcludingRequest,
) (*model.RecommendExcludingResponse, error) {
	var excluded map[int]bool
	var drawNumber sql.NullInt64

	switch {
	case req.QRURL != "":
		ticket, err := decodeTicket(ctx, req.QRURL)
		if err != nil {
			return nil, err
		}

		excluded = lotto.UnionNumbers(ticket.Bundle)
		drawNumber = sql.NullInt64{Valid: true, Int64: int64(ticket.DrawNumber)}

	case len(req.Numbers) > 0:
		excluded = map[int]bool{}
		for _, n := range req.Numbers {
			if n < lotto.MinNumber || n > lotto.MaxNumber {
				return nil, errorx.New(errorx.BadRequest, "Number %d is out of range", n)
			}

			excluded[n] = true
		}

	default:
		return nil, errorx.New(errorx.BadRequest, "Require a qr url or a number list")
	}

	// An omitted count means a full ticket of five combinations.
	count := req.Count
	if count == 0 {
		count = lotto.MaxCombinations
	}

	if count < 1 || count > lotto.MaxCombinations {
		return nil, errorx.New(errorx.BadRequest,
			"Require a combination count between 1 and %d", lotto.MaxCombinations)
	}

	bundle, err := d.generator.Recommend(excluded, count)
	if err != nil {
		if errors.Is(err, lotto.ErrInsufficientPool) {
			return nil, errorx.New(errorx.Unavailable,
				"Not enough numbers remain after the exclusions")
		}

		xcontext.Logger(ctx).Errorf("Cannot recommend combinations: %v", err)
		return nil, errorx.Unknown
	}

	recommendation := &entity.Recommendation{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       xcontext.RequestUserID(ctx),
		DrawNumber:   drawNumber,
		Combinations: entity.CombinationsFromBundle(bundle),
		PrizeStatus:  entity.PrizeStatusUnconfirmed,
	}

	if req.Save {
		if err := d.recommendationRepo.Create(ctx, recommendation); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create recommendation: %v", err)
			return nil, errorx.Unknown
		}
	}

	excludedNumbers := maps.Keys(excluded)
	slices.Sort(excludedNumbers)

	return &model.RecommendExcludingResponse{
		ExcludedNumbers: excludedNumbers,
		Recommendation:  model.ConvertRecommendation(recommendation),
	}, nil
}

// decodeTicket maps every decode failure to a user-facing bad request
// with a reason specific enough to fix the scan.
func decodeTicket(ctx context.Context, qrURL string) (*lotto.DecodedTicket, error) {
	ticket, err := lotto.DecodeQR(qrURL)
	if err == nil {
		return ticket, nil
	}

	xcontext.Logger(ctx).Debugf("Cannot decode the ticket url: %v", err)

	switch {
	case errors.Is(err, lotto.ErrMissingParameter):
		return nil, errorx.New(errorx.BadRequest, "The url has no ticket parameter")
	case errors.Is(err, lotto.ErrMalformedDrawNumber):
		return nil, errorx.New(errorx.BadRequest, "The ticket has no draw number")
	case errors.Is(err, lotto.ErrMalformedSeparator):
		return nil, errorx.New(errorx.BadRequest, "The ticket has an invalid format")
	case errors.Is(err, lotto.ErrDecodeFailed):
		return nil, errorx.New(errorx.BadRequest, "The ticket contains no valid combination")
	default:
		return nil, errorx.Unknown
	}
}

func sortedUnion(bundle lotto.TicketBundle) []int {
	numbers := maps.Keys(lotto.UnionNumbers(bundle))
	slices.Sort(numbers)
	return numbers
}
