package main

import (
	"fmt"
	"net/http"

	"github.com/gamzalab/lotto-backend/internal/common"
	"github.com/gamzalab/lotto-backend/internal/middleware"
	"github.com/gamzalab/lotto-backend/pkg/router"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadAuth()
	s.loadEndpoint()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	common.RegisterPrometheus()

	cfg := xcontext.Configs(s.ctx)
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.Before(middleware.AllowCors())
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	// Auth API
	// The session must be saved before the redirect flushes the headers.
	loginRouter := s.router.Branch()
	loginRouter.After(middleware.HandleSaveSession())
	loginRouter.After(middleware.HandleRedirect())
	{
		router.GET(loginRouter, "/loginKakao", s.authDomain.Login)
	}

	callbackRouter := s.router.Branch()
	callbackRouter.After(middleware.HandleSetCookie())
	{
		router.GET(callbackRouter, "/oauth2/callback", s.authDomain.OAuth2Callback)
	}

	// These following APIs need authentication with Access Token.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier().WithAccessToken()
	authRouter.Before(authVerifier.Middleware())
	{
		// User API
		router.GET(authRouter, "/getMe", s.userDomain.GetMe)

		// Recommendation API
		router.POST(authRouter, "/generateNumbers", s.recommendationDomain.Generate)
		router.GET(authRouter, "/getRecommendations", s.recommendationDomain.GetList)
		router.POST(authRouter, "/deleteRecommendations", s.recommendationDomain.Delete)

		// Purchase API
		router.POST(authRouter, "/decodeTicket", s.purchaseDomain.DecodeTicket)
		router.POST(authRouter, "/recommendExcluding", s.purchaseDomain.RecommendExcluding)
		router.POST(authRouter, "/createPurchase", s.purchaseDomain.Create)
		router.GET(authRouter, "/getPurchases", s.purchaseDomain.GetList)
		router.POST(authRouter, "/deletePurchases", s.purchaseDomain.Delete)

		// Prize check API
		router.POST(authRouter, "/checkResults", s.resultDomain.CheckAll)
		router.GET(authRouter, "/checkDraw", s.resultDomain.CheckDraw)
	}

	// Public API.
	router.POST(s.router, "/refresh", s.authDomain.Refresh)
	router.GET(s.router, "/getResult", s.resultDomain.GetResult)

	s.router.Handle(http.MethodGet, "/metrics", promhttp.Handler())
}
