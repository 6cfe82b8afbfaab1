// Package dhlottery calls the official Lotto 6/45 draw result API.
package dhlottery

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gamzalab/lotto-backend/pkg/api"
)

const resultPath = "/common.do"

// DrawResult is one published draw: six winning numbers plus the bonus.
type DrawResult struct {
	DrawNumber     int
	WinningNumbers []int
	BonusNumber    int
}

type IEndpoint interface {
	GetDrawResult(ctx context.Context, drawNumber int) (DrawResult, error)
}

type Endpoint struct {
	domain       string
	apiGenerator api.Generator
}

func New(domain string) *Endpoint {
	return &Endpoint{
		domain:       domain,
		apiGenerator: api.NewGenerator(),
	}
}

// GetDrawResult fetches the result of one draw. A draw that has not been
// published yet comes back with returnValue "fail".
func (e *Endpoint) GetDrawResult(ctx context.Context, drawNumber int) (DrawResult, error) {
	resp, err := e.apiGenerator.New(e.domain, resultPath).
		Query(api.Parameter{
			"method": "getLottoNumber",
			"drwNo":  strconv.Itoa(drawNumber),
		}).
		GET(ctx)
	if err != nil {
		return DrawResult{}, err
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return DrawResult{}, errors.New("invalid response")
	}

	returnValue, err := body.GetString("returnValue")
	if err != nil {
		return DrawResult{}, err
	}

	if returnValue != "success" {
		return DrawResult{}, fmt.Errorf("no result for draw %d", drawNumber)
	}

	result := DrawResult{DrawNumber: drawNumber}
	for i := 1; i <= 6; i++ {
		n, err := body.GetInt(fmt.Sprintf("drwtNo%d", i))
		if err != nil {
			return DrawResult{}, err
		}

		result.WinningNumbers = append(result.WinningNumbers, n)
	}

	result.BonusNumber, err = body.GetInt("bnusNo")
	if err != nil {
		return DrawResult{}, err
	}

	return result, nil
}
