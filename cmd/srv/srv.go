package main

import (
	"context"
	"net/http"

	"github.com/gamzalab/lotto-backend/internal/domain"
	"github.com/gamzalab/lotto-backend/internal/repository"
	"github.com/gamzalab/lotto-backend/pkg/api/dhlottery"
	"github.com/gamzalab/lotto-backend/pkg/authenticator"
	"github.com/gamzalab/lotto-backend/pkg/lotto"
	"github.com/gamzalab/lotto-backend/pkg/router"
	"github.com/gamzalab/lotto-backend/pkg/xredis"
	"github.com/urfave/cli/v2"
)

type srv struct {
	ctx context.Context
	app *cli.App

	userRepo           repository.UserRepository
	refreshTokenRepo   repository.RefreshTokenRepository
	recommendationRepo repository.RecommendationRepository
	purchaseRepo       repository.PurchaseRepository
	drawResultRepo     repository.DrawResultRepository

	authDomain           domain.AuthDomain
	userDomain           domain.UserDomain
	recommendationDomain domain.RecommendationDomain
	purchaseDomain       domain.PurchaseDomain
	resultDomain         domain.ResultDomain

	oauth2Service authenticator.IOAuth2Service
	lottoEndpoint dhlottery.IEndpoint
	redisClient   xredis.Client
	generator     *lotto.Generator

	router *router.Router
	server *http.Server
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.refreshTokenRepo = repository.NewRefreshTokenRepository()
	s.recommendationRepo = repository.NewRecommendationRepository()
	s.purchaseRepo = repository.NewPurchaseRepository()
	s.drawResultRepo = repository.NewDrawResultRepository()
}

func (s *srv) loadDomains() {
	s.generator = lotto.NewGenerator(nil)

	s.authDomain = domain.NewAuthDomain(s.userRepo, s.refreshTokenRepo, s.oauth2Service)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.recommendationDomain = domain.NewRecommendationDomain(s.recommendationRepo, s.generator)
	s.purchaseDomain = domain.NewPurchaseDomain(s.purchaseRepo, s.recommendationRepo, s.generator)
	s.resultDomain = domain.NewResultDomain(
		s.drawResultRepo, s.recommendationRepo, s.purchaseRepo, s.redisClient, s.lottoEndpoint)
}
