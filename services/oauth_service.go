package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	config "github.com/wanjikuh/shop_admin/configs"
)

// OAuthService wraps the authorization-code flow against an external
// provider. The token exchange itself is a black box; this layer only
// builds the authorize URL and swaps the code for an access token.
type OAuthService interface {
	AuthorizeURL() (url string, state string)
	ExchangeCode(ctx context.Context, code string) (string, error)
}

type oauthService struct {
	config *oauth2.Config
}

func NewOAuthService(cfg *config.AppConfig) OAuthService {
	return &oauthService{
		config: &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"read"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuthAuthURL,
				TokenURL: cfg.OAuthTokenURL,
			},
		},
	}
}

func (s *oauthService) AuthorizeURL() (string, string) {
	state := uuid.NewString()
	return s.config.AuthCodeURL(state), state
}

func (s *oauthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange authorization code: %w", err)
	}
	return token.AccessToken, nil
}
