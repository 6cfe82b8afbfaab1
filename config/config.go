package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	ApiServer ServerConfigs
	Database  DatabaseConfigs
	Redis     RedisConfigs
	Session   SessionConfigs
	Auth      AuthConfigs
	Lotto     LottoConfigs
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type RedisConfigs struct {
	Addr string
}

type SessionConfigs struct {
	Secret string
	Name   string
}

type AuthConfigs struct {
	TokenSecret     string
	AccessTokenName string
	AccessToken     TokenConfigs
	RefreshToken    TokenConfigs

	Kakao OAuth2Configs
}

type OAuth2Configs struct {
	Name         string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type TokenConfigs struct {
	Expiration Duration
}

type LottoConfigs struct {
	// ResultURL is the base URL of the official draw result API.
	ResultURL string
}

// Duration decodes "15m"-style strings from the TOML file and from
// environment variables.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}

	d.Duration = v
	return nil
}
