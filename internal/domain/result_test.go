package domain

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gamzalab/lotto-backend/internal/common"
	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/internal/model"
	"github.com/gamzalab/lotto-backend/internal/repository"
	"github.com/gamzalab/lotto-backend/pkg/api/dhlottery"
	"github.com/gamzalab/lotto-backend/pkg/errorx"
	"github.com/gamzalab/lotto-backend/pkg/testutil"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newResultDomain(
	redisClient *testutil.MockRedisClient, endpoint *testutil.MockLottoEndpoint,
) *resultDomain {
	if redisClient == nil {
		redisClient = &testutil.MockRedisClient{}
	}

	if endpoint == nil {
		endpoint = &testutil.MockLottoEndpoint{}
	}

	return &resultDomain{
		drawResultRepo:     repository.NewDrawResultRepository(),
		recommendationRepo: repository.NewRecommendationRepository(),
		purchaseRepo:       repository.NewPurchaseRepository(),
		redisClient:        redisClient,
		lottoEndpoint:      endpoint,
	}
}

func Test_resultDomain_GetResult_FromCache(t *testing.T) {
	ctx := testutil.MockContext()

	cached := entity.DrawResult{
		DrawNumber:     1100,
		WinningNumbers: []int{4, 9, 13, 18, 24, 33},
		BonusNumber:    40,
	}

	redisClient := &testutil.MockRedisClient{
		GetObjFunc: func(ctx context.Context, key string, v any) error {
			require.Equal(t, common.RedisKeyDrawResult(1100), key)
			b, err := json.Marshal(cached)
			require.NoError(t, err)
			return json.Unmarshal(b, v)
		},
	}

	domain := newResultDomain(redisClient, nil)

	resp, err := domain.GetResult(ctx, &model.GetResultRequest{DrawNumber: 1100})
	require.NoError(t, err)
	require.Equal(t, "cache", resp.Source)
	require.Equal(t, []int{4, 9, 13, 18, 24, 33}, resp.WinningNumbers)
	require.Equal(t, 40, resp.BonusNumber)
}

func Test_resultDomain_GetResult_FromDatabase(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	cachedKeys := []string{}
	redisClient := &testutil.MockRedisClient{
		SetObjFunc: func(ctx context.Context, key string, obj any, ttl time.Duration) error {
			require.Zero(t, ttl)
			cachedKeys = append(cachedKeys, key)
			return nil
		},
	}

	domain := newResultDomain(redisClient, nil)

	resp, err := domain.GetResult(ctx, &model.GetResultRequest{
		DrawNumber: testutil.DrawResult1100.DrawNumber,
	})
	require.NoError(t, err)
	require.Equal(t, "database", resp.Source)

	// A database hit backfills redis.
	require.Equal(t,
		[]string{common.RedisKeyDrawResult(testutil.DrawResult1100.DrawNumber)}, cachedKeys)
}

func Test_resultDomain_GetResult_FromEndpoint(t *testing.T) {
	ctx := testutil.MockContext()

	endpoint := &testutil.MockLottoEndpoint{
		GetDrawResultFunc: func(ctx context.Context, drawNumber int) (dhlottery.DrawResult, error) {
			return dhlottery.DrawResult{
				DrawNumber:     drawNumber,
				WinningNumbers: []int{1, 2, 3, 4, 5, 6},
				BonusNumber:    7,
			}, nil
		},
	}

	domain := newResultDomain(nil, endpoint)

	resp, err := domain.GetResult(ctx, &model.GetResultRequest{DrawNumber: 1200})
	require.NoError(t, err)
	require.Equal(t, "fetch", resp.Source)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, resp.WinningNumbers)

	// A fetched result is persisted for the next lookup.
	stored, err := domain.drawResultRepo.GetByDrawNumber(ctx, 1200)
	require.NoError(t, err)
	require.Equal(t, 7, stored.BonusNumber)
}

func Test_resultDomain_GetResult_Unpublished(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newResultDomain(nil, nil)

	_, err := domain.GetResult(ctx, &model.GetResultRequest{DrawNumber: 9999})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	_, err = domain.GetResult(ctx, &model.GetResultRequest{DrawNumber: 0})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_resultDomain_CheckAll(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	domain := newResultDomain(nil, nil)

	resp, err := domain.CheckAll(ctx, &model.CheckResultsRequest{})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Checked)
	require.Equal(t, 2, resp.Winning)
	require.Equal(t, 0, resp.Losing)
	require.Equal(t, 0, resp.Pending)

	// The best tier of each record is written back.
	purchases, err := domain.purchaseRepo.GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	require.Equal(t, "3rd", purchases[0].PrizeStatus)

	recommendations, err := domain.recommendationRepo.GetByUserIDAndDraw(
		ctx, testutil.User1.ID, testutil.DrawResult1100.DrawNumber)
	require.NoError(t, err)
	require.Len(t, recommendations, 1)
	require.Equal(t, "5th", recommendations[0].PrizeStatus)

	// Everything confirmed; the second run has nothing left to do.
	resp, err = domain.CheckAll(ctx, &model.CheckResultsRequest{})
	require.NoError(t, err)
	require.Equal(t, 0, resp.Checked)
}

func Test_resultDomain_CheckAll_PendingDraw(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	domain := newResultDomain(nil, nil)

	// A purchase for a draw that has not happened yet stays pending.
	purchase := testutil.Purchase1
	purchase.ID = "purchase-future"
	purchase.DrawNumber = 9999
	require.NoError(t, domain.purchaseRepo.Create(ctx, &purchase))

	resp, err := domain.CheckAll(ctx, &model.CheckResultsRequest{})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Checked)
	require.Equal(t, 1, resp.Pending)
}

func Test_resultDomain_CheckAll_StoreFailure(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	domain := newResultDomain(nil, nil)

	// A broken result store fails the request instead of reporting every
	// record as pending.
	require.NoError(t, xcontext.DB(ctx).Migrator().DropTable(&entity.DrawResult{}))

	_, err := domain.CheckAll(ctx, &model.CheckResultsRequest{})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unknown.Code, errx.Code)
}

func Test_resultDomain_CheckDraw(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	domain := newResultDomain(nil, nil)

	resp, err := domain.CheckDraw(ctx, &model.CheckDrawRequest{
		DrawNumber: testutil.DrawResult1100.DrawNumber,
	})
	require.NoError(t, err)
	require.Equal(t, testutil.DrawResult1100.DrawNumber, resp.DrawNumber)
	require.Len(t, resp.Records, 2)

	byID := map[string]model.CheckedRecord{}
	for _, record := range resp.Records {
		byID[record.ID] = record
	}

	purchase := byID[testutil.Purchase1.ID]
	require.Equal(t, "purchase", purchase.Kind)
	require.Equal(t, "3rd", purchase.BestTier)
	require.Equal(t, "3rd", purchase.Combinations[0].Tier)
	require.Equal(t, "no-win", purchase.Combinations[1].Tier)

	recommendation := byID[testutil.Recommendation2.ID]
	require.Equal(t, "recommendation", recommendation.Kind)
	require.Equal(t, "5th", recommendation.BestTier)
}
