package main

import (
	"context"

	"github.com/gamzalab/lotto-backend/config"
	"github.com/gamzalab/lotto-backend/pkg/api/dhlottery"
	"github.com/gamzalab/lotto-backend/pkg/authenticator"
	"github.com/gamzalab/lotto-backend/pkg/logger"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
	"github.com/gamzalab/lotto-backend/pkg/xredis"
	"github.com/gorilla/sessions"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func (s *srv) loadConfig(cctx *cli.Context) {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithConfigs(context.Background(), *cfg)
}

func (s *srv) loadLogger() {
	level := logger.DEBUG
	if xcontext.Configs(s.ctx).Env == "prod" {
		level = logger.INFO
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) loadDatabase() {
	cfg := xcontext.Configs(s.ctx)
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                      cfg.Database.ConnectionString(),
		DefaultStringSize:        256,
		DisableDatetimePrecision: true,
		DontSupportRenameIndex:   true,
		DontSupportRenameColumn:  true,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) loadRedis() {
	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = redisClient
}

func (s *srv) loadAuth() {
	cfg := xcontext.Configs(s.ctx)
	s.ctx = xcontext.WithTokenEngine(s.ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	s.ctx = xcontext.WithSessionStore(s.ctx, sessions.NewCookieStore([]byte(cfg.Session.Secret)))
	s.oauth2Service = authenticator.NewKakaoService(cfg.Auth.Kakao, nil)
}

func (s *srv) loadEndpoint() {
	s.lottoEndpoint = dhlottery.New(xcontext.Configs(s.ctx).Lotto.ResultURL)
}
