package domain

import (
	"context"
	"errors"
	"time"

	"github.com/gamzalab/lotto-backend/internal/entity"
	"github.com/gamzalab/lotto-backend/internal/model"
	"github.com/gamzalab/lotto-backend/internal/repository"
	"github.com/gamzalab/lotto-backend/pkg/authenticator"
	"github.com/gamzalab/lotto-backend/pkg/crypto"
	"github.com/gamzalab/lotto-backend/pkg/errorx"
	"github.com/gamzalab/lotto-backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
	OAuth2Callback(context.Context, *model.OAuth2CallbackRequest) (*model.OAuth2CallbackResponse, error)
	Refresh(context.Context, *model.RefreshTokenRequest) (*model.RefreshTokenResponse, error)
}

type authDomain struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	oauth2Service    authenticator.IOAuth2Service
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	oauth2Service authenticator.IOAuth2Service,
) AuthDomain {
	return &authDomain{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		oauth2Service:    oauth2Service,
	}
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	state, err := crypto.GenerateRandomString()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate oauth2 state: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{
		RedirectURL: d.oauth2Service.AuthCodeURL(state),
		State:       state,
	}, nil
}

func (d *authDomain) OAuth2Callback(
	ctx context.Context, req *model.OAuth2CallbackRequest,
) (*model.OAuth2CallbackResponse, error) {
	if err := d.verifyState(ctx, req.State); err != nil {
		return nil, err
	}

	serviceUser, err := d.oauth2Service.VerifyAuthorizationCode(ctx, req.Code)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot verify authorization code: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot verify the authorization code")
	}

	// The user upsert and the first refresh token must land together.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	user, err := d.upsertUser(ctx, serviceUser)
	if err != nil {
		return nil, err
	}

	refreshToken, err := d.generateRefreshToken(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate refresh token: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	accessToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration.Duration,
		model.AccessToken{
			ID:       user.ID,
			Nickname: user.Nickname,
		})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.OAuth2CallbackResponse{
		User:         model.ConvertUser(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (d *authDomain) Refresh(
	ctx context.Context, req *model.RefreshTokenRequest,
) (*model.RefreshTokenResponse, error) {
	// Verify the refresh token from client.
	refreshToken := model.RefreshToken{}
	err := xcontext.TokenEngine(ctx).Verify(req.RefreshToken, &refreshToken)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Failed to verify refresh token: %v", err)
		return nil, errorx.Unknown
	}

	// Load the storage refresh token from database.
	hashedFamily := crypto.SHA256([]byte(refreshToken.Family))
	storageToken, err := d.refreshTokenRepo.Get(ctx, hashedFamily)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get refresh token family: %v", err)
		return nil, errorx.Unknown
	}

	// Check the expiration of storage refresh token.
	if storageToken.Expiration.Before(time.Now()) {
		return nil, errorx.New(errorx.TokenExpired, "Your refresh token is expired")
	}

	// Check if refresh token is stolen or invalid.
	// NOTE: DO NOT create transaction here. The delete and rotate query is independent.
	if refreshToken.Counter != storageToken.Counter {
		err = d.refreshTokenRepo.Delete(ctx, hashedFamily)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete refresh token: %v", err)
			return nil, errorx.Unknown
		}

		return nil, errorx.New(errorx.StolenDetected,
			"Your refresh token will be revoked because it is detected as stolen")
	}

	// Rotate the refresh token by increasing counter by 1.
	err = d.refreshTokenRepo.Rotate(ctx, hashedFamily)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot rotate the refresh token: %v", err)
		return nil, errorx.Unknown
	}

	// Everything is ok, generate refresh token and access token.
	newRefreshToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.RefreshToken.Expiration.Duration,
		model.RefreshToken{
			Family:  refreshToken.Family,
			Counter: refreshToken.Counter + 1,
		})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate refresh token: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, storageToken.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	newAccessToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration.Duration,
		model.AccessToken{
			ID:       user.ID,
			Nickname: user.Nickname,
		})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RefreshTokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// verifyState compares the callback state with the one stored in session
// during login, then drops it. A state only ever authorizes one callback.
func (d *authDomain) verifyState(ctx context.Context, state string) error {
	r := xcontext.HTTPRequest(ctx)
	session, err := xcontext.SessionStore(ctx).Get(r, xcontext.Configs(ctx).Session.Name)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get the session: %v", err)
		return errorx.Unknown
	}

	sessionState, ok := session.Values["state"].(string)
	if !ok || sessionState == "" || sessionState != state {
		return errorx.New(errorx.BadRequest, "Mismatched oauth2 state")
	}

	delete(session.Values, "state")
	if err := session.Save(r, xcontext.HTTPWriter(ctx)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save the session: %v", err)
		return errorx.Unknown
	}

	return nil
}

// upsertUser finds the user by kakao id, creating it on first login. The
// stored nickname follows the provider on every login.
func (d *authDomain) upsertUser(
	ctx context.Context, serviceUser authenticator.OAuth2User,
) (*entity.User, error) {
	user, err := d.userRepo.GetByKakaoID(ctx, serviceUser.ID)
	if err == nil {
		if serviceUser.Nickname != "" && serviceUser.Nickname != user.Nickname {
			if err := d.userRepo.UpdateNickname(ctx, user.ID, serviceUser.Nickname); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot update nickname: %v", err)
				return nil, errorx.Unknown
			}

			user.Nickname = serviceUser.Nickname
		}

		return user, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user by kakao id: %v", err)
		return nil, errorx.Unknown
	}

	user = &entity.User{
		Base:     entity.Base{ID: uuid.NewString()},
		KakaoID:  serviceUser.ID,
		Nickname: serviceUser.Nickname,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	return user, nil
}

func (d *authDomain) generateRefreshToken(ctx context.Context, userID string) (string, error) {
	refreshTokenFamily, err := crypto.GenerateRandomString()
	if err != nil {
		return "", err
	}

	refreshToken, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.RefreshToken.Expiration.Duration,
		model.RefreshToken{
			Family:  refreshTokenFamily,
			Counter: 0,
		})
	if err != nil {
		return "", err
	}

	err = d.refreshTokenRepo.Create(ctx, &entity.RefreshToken{
		UserID:     userID,
		Family:     crypto.SHA256([]byte(refreshTokenFamily)),
		Counter:    0,
		Expiration: time.Now().Add(xcontext.Configs(ctx).Auth.RefreshToken.Expiration.Duration),
	})
	if err != nil {
		return "", err
	}

	return refreshToken, nil
}
