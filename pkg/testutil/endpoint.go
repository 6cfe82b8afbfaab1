package testutil

import (
	"context"
	"fmt"

	"github.com/gamzalab/lotto-backend/pkg/api/dhlottery"
)

type MockLottoEndpoint struct {
	GetDrawResultFunc func(ctx context.Context, drawNumber int) (dhlottery.DrawResult, error)
}

func (m *MockLottoEndpoint) GetDrawResult(
	ctx context.Context, drawNumber int,
) (dhlottery.DrawResult, error) {
	if m.GetDrawResultFunc != nil {
		return m.GetDrawResultFunc(ctx, drawNumber)
	}

	return dhlottery.DrawResult{}, fmt.Errorf("no result for draw %d", drawNumber)
}
