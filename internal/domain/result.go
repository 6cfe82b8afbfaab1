package domain

import (
	"context"
	"errors"

	"github.com/gamzalab/lotto-backend/internal/common"
	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/internal/model"
	"github.com/gamzalab/lotto-backend/internal/repository"
	"github.com/gamzalab/lotto-backend/pkg/api/dhlottery"
	"github.com/gamzalab/lotto-backend/pkg/errorx"
	"github.com/gamzalab/lotto-backend/pkg/lotto"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
	"github.com/gamzalab/lotto-backend/pkg/xredis"
	"gorm.io/gorm"
)

const (
	resultSourceCache    = "cache"
	resultSourceDatabase = "database"
	resultSourceFetch    = "fetch"
)

type ResultDomain interface {
	GetResult(context.Context, *model.GetResultRequest) (*model.GetResultResponse, error)
	CheckAll(context.Context, *model.CheckResultsRequest) (*model.CheckResultsResponse, error)
	CheckDraw(context.Context, *model.CheckDrawRequest) (*model.CheckDrawResponse, error)
}

type resultDomain struct {
	drawResultRepo     repository.DrawResultRepository
	recommendationRepo repository.RecommendationRepository
	purchaseRepo       repository.PurchaseRepository
	redisClient        xredis.Client
	lottoEndpoint      dhlottery.IEndpoint
}

func NewResultDomain(
	drawResultRepo repository.DrawResultRepository,
	recommendationRepo repository.RecommendationRepository,
	purchaseRepo repository.PurchaseRepository,
	redisClient xredis.Client,
	lottoEndpoint dhlottery.IEndpoint,
) ResultDomain {
	return &resultDomain{
		drawResultRepo:     drawResultRepo,
		recommendationRepo: recommendationRepo,
		purchaseRepo:       purchaseRepo,
		redisClient:        redisClient,
		lottoEndpoint:      lottoEndpoint,
	}
}

func (d *resultDomain) GetResult(
	ctx context.Context, req *model.GetResultRequest,
) (*model.GetResultResponse, error) {
	if req.DrawNumber <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Require a positive draw number")
	}

	result, source, err := d.getDrawResult(ctx, req.DrawNumber)
	if err != nil {
		return nil, err
	}

	return &model.GetResultResponse{
		DrawNumber:     result.DrawNumber,
		WinningNumbers: result.WinningNumbers,
		BonusNumber:    result.BonusNumber,
		Source:         source,
	}, nil
}

func (d *resultDomain) CheckAll(
	ctx context.Context, req *model.CheckResultsRequest,
) (*model.CheckResultsResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	purchases, err := d.purchaseRepo.GetUncheckedByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get unchecked purchases: %v", err)
		return nil, errorx.Unknown
	}

	recommendations, err := d.recommendationRepo.GetUncheckedByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get unchecked recommendations: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.CheckResultsResponse{}
	for i := range purchases {
		tier, ok, err := d.checkRecord(ctx, purchases[i].DrawNumber, purchases[i].Combinations)
		if err != nil {
			return nil, err
		}

		if !ok {
			resp.Pending++
			continue
		}

		if err := d.purchaseRepo.UpdatePrizeStatus(ctx, purchases[i].ID, tier.String()); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update purchase prize status: %v", err)
			return nil, errorx.Unknown
		}

		resp.Checked++
		if tier.IsWinning() {
			resp.Winning++
		} else {
			resp.Losing++
		}
	}

	for i := range recommendations {
		tier, ok, err := d.checkRecord(ctx,
			int(recommendations[i].DrawNumber.Int64), recommendations[i].Combinations)
		if err != nil {
			return nil, err
		}

		if !ok {
			resp.Pending++
			continue
		}

		err = d.recommendationRepo.UpdatePrizeStatus(ctx, recommendations[i].ID, tier.String())
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update recommendation prize status: %v", err)
			return nil, errorx.Unknown
		}

		resp.Checked++
		if tier.IsWinning() {
			resp.Winning++
		} else {
			resp.Losing++
		}
	}

	return resp, nil
}

func (d *resultDomain) CheckDraw(
	ctx context.Context, req *model.CheckDrawRequest,
) (*model.CheckDrawResponse, error) {
	if req.DrawNumber <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Require a positive draw number")
	}

	result, _, err := d.getDrawResult(ctx, req.DrawNumber)
	if err != nil {
		return nil, err
	}

	userID := xcontext.RequestUserID(ctx)
	winning := lotto.NumberSet(result.WinningNumbers)

	purchases, err := d.purchaseRepo.GetByUserIDAndDraw(ctx, userID, req.DrawNumber)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get purchases: %v", err)
		return nil, errorx.Unknown
	}

	recommendations, err := d.recommendationRepo.GetByUserIDAndDraw(ctx, userID, req.DrawNumber)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get recommendations: %v", err)
		return nil, errorx.Unknown
	}

	records := []model.CheckedRecord{}
	for i := range purchases {
		records = append(records, checkedRecord(
			purchases[i].ID, "purchase", purchases[i].Combinations,
			winning, result.BonusNumber))
	}

	for i := range recommendations {
		records = append(records, checkedRecord(
			recommendations[i].ID, "recommendation", recommendations[i].Combinations,
			winning, result.BonusNumber))
	}

	return &model.CheckDrawResponse{
		DrawNumber:     result.DrawNumber,
		WinningNumbers: result.WinningNumbers,
		BonusNumber:    result.BonusNumber,
		Records:        records,
	}, nil
}

// getDrawResult resolves a draw through redis, then the database, then
// the official endpoint. Results are immutable once published, so both
// caches keep them forever.
func (d *resultDomain) getDrawResult(
	ctx context.Context, drawNumber int,
) (*entity.DrawResult, string, error) {
	redisKey := common.RedisKeyDrawResult(drawNumber)

	var cached entity.DrawResult
	if err := d.redisClient.GetObj(ctx, redisKey, &cached); err == nil {
		common.PromCounters[common.DrawResultFetchTotal].
			WithLabelValues(resultSourceCache).Inc()
		return &cached, resultSourceCache, nil
	}

	result, err := d.drawResultRepo.GetByDrawNumber(ctx, drawNumber)
	if err == nil {
		if err := d.redisClient.SetObj(ctx, redisKey, result, 0); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot cache the draw result: %v", err)
		}

		common.PromCounters[common.DrawResultFetchTotal].
			WithLabelValues(resultSourceDatabase).Inc()
		return result, resultSourceDatabase, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get the draw result: %v", err)
		return nil, "", errorx.Unknown
	}

	fetched, err := d.lottoEndpoint.GetDrawResult(ctx, drawNumber)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot fetch the draw result: %v", err)
		return nil, "", errorx.New(errorx.NotFound,
			"The result of draw %d is not published yet", drawNumber)
	}

	result = &entity.DrawResult{
		DrawNumber:     fetched.DrawNumber,
		WinningNumbers: fetched.WinningNumbers,
		BonusNumber:    fetched.BonusNumber,
	}

	if err := d.drawResultRepo.Upsert(ctx, result); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store the draw result: %v", err)
		return nil, "", errorx.Unknown
	}

	if err := d.redisClient.SetObj(ctx, redisKey, result, 0); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache the draw result: %v", err)
	}

	common.PromCounters[common.DrawResultFetchTotal].
		WithLabelValues(resultSourceFetch).Inc()
	return result, resultSourceFetch, nil
}

// checkRecord evaluates one stored bundle against its draw. It reports
// false when the draw has no published result yet; any other lookup
// failure is returned as is.
func (d *resultDomain) checkRecord(
	ctx context.Context, drawNumber int, combinations entity.Array[entity.Combination],
) (lotto.Tier, bool, error) {
	result, _, err := d.getDrawResult(ctx, drawNumber)
	if err != nil {
		var errx errorx.Error
		if errors.As(err, &errx) && errx.Code == errorx.NotFound {
			return 0, false, nil
		}

		return 0, false, err
	}

	bundle := entity.BundleFromCombinations(combinations)
	best := lotto.BestOf(bundle, lotto.NumberSet(result.WinningNumbers), result.BonusNumber)
	return best, true, nil
}

func checkedRecord(
	id, kind string, combinations entity.Array[entity.Combination],
	winning lotto.NumberSet, bonus int,
) model.CheckedRecord {
	record := model.CheckedRecord{ID: id, Kind: kind}

	best := lotto.TierNone
	for _, c := range combinations {
		tier := lotto.Evaluate(lotto.NumberSet(c.Numbers), winning, bonus)
		if tier.Better(best) {
			best = tier
		}

		record.Combinations = append(record.Combinations, model.CheckedCombination{
			Label:   c.Label,
			Numbers: c.Numbers,
			Tier:    tier.String(),
		})
	}

	record.BestTier = best.String()
	return record
}
