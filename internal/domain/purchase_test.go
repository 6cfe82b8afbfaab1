package domain

import (
	"math/rand"
	"testing"

	"github.com/gamzalab/lotto-backend/internal/model"
	"github.com/gamzalab/lotto-backend/internal/repository"
	"github.com/gamzalab/lotto-backend/pkg/errorx"
	"github.com/gamzalab/lotto-backend/pkg/lotto"
	"github.com/gamzalab/lotto-backend/pkg/testutil"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

const sampleQRURL = "https://m.dhlottery.co.kr/?v=1194s040913182433s050607212244"

func newPurchaseDomain() *purchaseDomain {
	return &purchaseDomain{
		purchaseRepo:       repository.NewPurchaseRepository(),
		recommendationRepo: repository.NewRecommendationRepository(),
		generator:          lotto.NewGenerator(rand.New(rand.NewSource(1))),
	}
}

func Test_purchaseDomain_DecodeTicket(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	domain := newPurchaseDomain()

	resp, err := domain.DecodeTicket(ctx, &model.DecodeTicketRequest{QRURL: sampleQRURL})
	require.NoError(t, err)
	require.Equal(t, 1194, resp.DrawNumber)
	require.Equal(t, []model.Combination{
		{Label: "A", Numbers: []int{4, 9, 13, 18, 24, 33}},
		{Label: "B", Numbers: []int{5, 6, 7, 21, 22, 44}},
	}, resp.Combinations)
	require.Equal(t, []int{4, 5, 6, 7, 9, 13, 18, 21, 22, 24, 33, 44}, resp.UsedNumbers)
}

func Test_purchaseDomain_DecodeTicket_Malformed(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	domain := newPurchaseDomain()

	for _, qrURL := range []string{
		"https://m.dhlottery.co.kr/",                      // no ticket parameter
		"https://m.dhlottery.co.kr/?v=sabc",               // no draw number
		"https://m.dhlottery.co.kr/?v=1194040913182433",   // no separator
		"https://m.dhlottery.co.kr/?v=1194s0409131824",    // short segment
		"https://m.dhlottery.co.kr/?v=1194s04091318243x3", // non-digit segment
	} {
		_, err := domain.DecodeTicket(ctx, &model.DecodeTicketRequest{QRURL: qrURL})
		var errx errorx.Error
		require.ErrorAs(t, err, &errx, qrURL)
		require.Equal(t, errorx.BadRequest, errx.Code, qrURL)
	}
}

func Test_purchaseDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	domain := newPurchaseDomain()

	resp, err := domain.Create(ctx, &model.CreatePurchaseRequest{QRURL: sampleQRURL})
	require.NoError(t, err)
	require.Equal(t, 1194, resp.Purchase.DrawNumber)
	require.Equal(t, "unconfirmed", resp.Purchase.PrizeStatus)

	stored, err := domain.purchaseRepo.GetByUserIDAndDraw(ctx, "user1", 1194)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, resp.Purchase.ID, stored[0].ID)
}

func Test_purchaseDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	domain := newPurchaseDomain()

	resp, err := domain.GetList(ctx, &model.GetPurchasesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Purchases, 1)

	resp, err = domain.GetList(ctx, &model.GetPurchasesRequest{
		DrawNumber: testutil.DrawResult1100.DrawNumber,
	})
	require.NoError(t, err)
	require.Len(t, resp.Purchases, 1)

	resp, err = domain.GetList(ctx, &model.GetPurchasesRequest{DrawNumber: 1})
	require.NoError(t, err)
	require.Empty(t, resp.Purchases)
}

func Test_purchaseDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	domain := newPurchaseDomain()

	resp, err := domain.Delete(ctx, &model.DeletePurchasesRequest{
		IDs: []string{testutil.Purchase1.ID, "unknown"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.Deleted)

	list, err := domain.GetList(ctx, &model.GetPurchasesRequest{})
	require.NoError(t, err)
	require.Empty(t, list.Purchases)
}

func Test_purchaseDomain_RecommendExcluding_FromTicket(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	domain := newPurchaseDomain()

	resp, err := domain.RecommendExcluding(ctx, &model.RecommendExcludingRequest{
		QRURL: sampleQRURL,
		Count: 2,
		Save:  true,
	})
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6, 7, 9, 13, 18, 21, 22, 24, 33, 44}, resp.ExcludedNumbers)
	require.Equal(t, 1194, resp.Recommendation.DrawNumber)
	require.Len(t, resp.Recommendation.Combinations, 2)

	excluded := map[int]bool{}
	for _, n := range resp.ExcludedNumbers {
		excluded[n] = true
	}

	for _, c := range resp.Recommendation.Combinations {
		for _, n := range c.Numbers {
			require.False(t, excluded[n], "number %d appears on the ticket", n)
		}
	}

	// Save persists the recommendation bound to the ticket draw.
	stored, err := domain.recommendationRepo.GetByUserID(
		ctx, "user1", repository.RecommendationSortNewest)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, int64(1194), stored[0].DrawNumber.Int64)
}

func Test_purchaseDomain_RecommendExcluding_FromNumbers(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	domain := newPurchaseDomain()

	resp, err := domain.RecommendExcluding(ctx, &model.RecommendExcludingRequest{
		Numbers: []int{45, 1, 1, 3},
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 45}, resp.ExcludedNumbers)
	// An omitted count fills a full ticket of five combinations.
	require.Len(t, resp.Recommendation.Combinations, lotto.MaxCombinations)
	require.Zero(t, resp.Recommendation.DrawNumber)

	// Without Save, nothing is persisted.
	stored, err := domain.recommendationRepo.GetByUserID(
		ctx, "user1", repository.RecommendationSortNewest)
	require.NoError(t, err)
	require.Empty(t, stored)

	_, err = domain.RecommendExcluding(ctx, &model.RecommendExcludingRequest{
		Numbers: []int{0},
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = domain.RecommendExcluding(ctx, &model.RecommendExcludingRequest{})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_purchaseDomain_RecommendExcluding_InsufficientPool(t *testing.T) {
	ctx := testutil.MockContextWithUserID("user1")
	domain := newPurchaseDomain()

	// Exclude all but five numbers; one combination needs six.
	numbers := []int{}
	for n := lotto.MinNumber; n <= lotto.MaxNumber-5; n++ {
		numbers = append(numbers, n)
	}

	_, err := domain.RecommendExcluding(ctx, &model.RecommendExcludingRequest{Numbers: numbers})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unavailable, errx.Code)
}
