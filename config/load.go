package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Load builds the configuration from defaults, the optional TOML file at
// path, and finally environment variable overrides for secrets. A missing
// path skips the file step.
func Load(path string) (*Configs, error) {
	cfg := defaultConfigs()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaultConfigs() *Configs {
	return &Configs{
		Env: "local",
		ApiServer: ServerConfigs{
			Host: "localhost",
			Port: "8080",
		},
		Database: DatabaseConfigs{
			Host:     "localhost",
			Port:     "3306",
			Database: "lotto",
			User:     "lotto",
		},
		Redis: RedisConfigs{
			Addr: "localhost:6379",
		},
		Session: SessionConfigs{
			Name: "lotto_session",
		},
		Auth: AuthConfigs{
			AccessTokenName: "access_token",
			AccessToken:     TokenConfigs{Expiration: Duration{time.Hour}},
			RefreshToken:    TokenConfigs{Expiration: Duration{30 * 24 * time.Hour}},
			Kakao: OAuth2Configs{
				Name:        "kakao",
				RedirectURL: "http://localhost:8080/oauth2/callback",
			},
		},
		Lotto: LottoConfigs{
			ResultURL: "https://www.dhlottery.co.kr",
		},
	}
}

func applyEnv(cfg *Configs) {
	setenv(&cfg.Env, "ENV")
	setenv(&cfg.ApiServer.Port, "PORT")
	setenv(&cfg.Database.Host, "DB_HOST")
	setenv(&cfg.Database.Port, "DB_PORT")
	setenv(&cfg.Database.Database, "DB_NAME")
	setenv(&cfg.Database.User, "DB_USER")
	setenv(&cfg.Database.Password, "DB_PASSWORD")
	setenv(&cfg.Redis.Addr, "REDIS_ADDR")
	setenv(&cfg.Session.Secret, "SESSION_SECRET")
	setenv(&cfg.Auth.TokenSecret, "TOKEN_SECRET")
	setenv(&cfg.Auth.Kakao.ClientID, "KAKAO_CLIENT_ID")
	setenv(&cfg.Auth.Kakao.ClientSecret, "KAKAO_CLIENT_SECRET")
	setenv(&cfg.Auth.Kakao.RedirectURL, "KAKAO_REDIRECT_URL")
}

func setenv(target *string, name string) {
	if value, ok := os.LookupEnv(name); ok {
		*target = value
	}
}
