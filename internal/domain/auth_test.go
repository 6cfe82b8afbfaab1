package domain

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/internal/model"
	"github.com/gamzalab/lotto-backend/internal/repository"
	"github.com/gamzalab/lotto-backend/pkg/authenticator"
	"github.com/gamzalab/lotto-backend/pkg/crypto"
	"github.com/gamzalab/lotto-backend/pkg/errorx"
	"github.com/gamzalab/lotto-backend/pkg/testutil"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_authDomain_Login(t *testing.T) {
	oauth2Service := testutil.NewMockOAuth2("kakao")
	oauth2Service.AuthCodeURLFunc = func(state string) string {
		return "https://kauth.kakao.com/oauth/authorize?state=" + state
	}

	domain := &authDomain{oauth2Service: oauth2Service}

	resp, err := domain.Login(testutil.MockContext(), &model.LoginRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, resp.State)
	require.Contains(t, resp.RedirectURL, resp.State)
}

func Test_authDomain_OAuth2Callback(t *testing.T) {
	oauth2Service := testutil.NewMockOAuth2("kakao")
	oauth2Service.VerifyAuthorizationCodeFunc = func(
		ctx context.Context, code string,
	) (authenticator.OAuth2User, error) {
		return authenticator.OAuth2User{ID: 9999, Nickname: "newbie"}, nil
	}

	ctx := testutil.MockContext()
	r := httptest.NewRequest("GET", "/oauth2/callback", nil)
	w := httptest.NewRecorder()
	ctx = xcontext.WithHTTPRequest(ctx, r)
	ctx = xcontext.WithHTTPWriter(ctx, w)

	session, err := xcontext.SessionStore(ctx).Get(r, xcontext.Configs(ctx).Session.Name)
	require.NoError(t, err)
	session.Values["state"] = "valid-state"

	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
		oauth2Service:    oauth2Service,
	}

	// A mismatched state is rejected before touching the provider.
	_, err = domain.OAuth2Callback(ctx, &model.OAuth2CallbackRequest{
		State: "another-state", Code: "code",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	resp, err := domain.OAuth2Callback(ctx, &model.OAuth2CallbackRequest{
		State: "valid-state", Code: "code",
	})
	require.NoError(t, err)
	require.Equal(t, "newbie", resp.User.Nickname)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	// The first login creates the user record.
	user, err := domain.userRepo.GetByKakaoID(ctx, 9999)
	require.NoError(t, err)
	require.Equal(t, "newbie", user.Nickname)

	accessToken := model.AccessToken{}
	err = xcontext.TokenEngine(ctx).Verify(resp.AccessToken, &accessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, accessToken.ID)

	// The state is single-use, so replaying the callback fails.
	_, err = domain.OAuth2Callback(ctx, &model.OAuth2CallbackRequest{
		State: "valid-state", Code: "code",
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_authDomain_OAuth2Callback_NicknameFollowsProvider(t *testing.T) {
	oauth2Service := testutil.NewMockOAuth2("kakao")
	oauth2Service.VerifyAuthorizationCodeFunc = func(
		ctx context.Context, code string,
	) (authenticator.OAuth2User, error) {
		return authenticator.OAuth2User{ID: testutil.User1.KakaoID, Nickname: "renamed"}, nil
	}

	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
		oauth2Service:    oauth2Service,
	}

	user, err := domain.upsertUser(ctx, authenticator.OAuth2User{
		ID: testutil.User1.KakaoID, Nickname: "renamed",
	})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, user.ID)
	require.Equal(t, "renamed", user.Nickname)

	stored, err := domain.userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, "renamed", stored.Nickname)
}

func Test_authDomain_Refresh(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
	}

	refreshTokenObj := model.RefreshToken{
		Family:  "Foo",
		Counter: 0,
	}

	err := domain.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:     testutil.User1.ID,
		Family:     crypto.SHA256([]byte(refreshTokenObj.Family)),
		Counter:    0,
		Expiration: time.Now().Add(time.Minute),
	})
	require.NoError(t, err)

	refreshToken, err := xcontext.TokenEngine(ctx).Generate(time.Minute, refreshTokenObj)
	require.NoError(t, err)

	// Successfully for the first refresh.
	resp, err := domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.NoError(t, err)

	// Verify access token.
	accessToken := model.AccessToken{}
	err = xcontext.TokenEngine(ctx).Verify(resp.AccessToken, &accessToken)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, accessToken.ID)

	// Detect stolen for the second refresh, the refresh token will be deleted after this call.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.Error(t, err)
	require.Equal(t, "Your refresh token will be revoked because it is detected as stolen", err.Error())

	// Not found refresh token for the third refresh.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	require.Error(t, err)
	require.Equal(t, "Request failed", err.Error())
}

func Test_authDomain_Refresh_Expired(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	domain := &authDomain{
		userRepo:         repository.NewUserRepository(),
		refreshTokenRepo: repository.NewRefreshTokenRepository(),
	}

	refreshTokenObj := model.RefreshToken{Family: "Expired", Counter: 0}
	err := domain.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:     testutil.User1.ID,
		Family:     crypto.SHA256([]byte(refreshTokenObj.Family)),
		Counter:    0,
		Expiration: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	refreshToken, err := xcontext.TokenEngine(ctx).Generate(time.Minute, refreshTokenObj)
	require.NoError(t, err)

	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{RefreshToken: refreshToken})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.TokenExpired, errx.Code)
}
