package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"google.golang.org/api/idtoken"

	"github.com/abigaildinucci5-hue/tp-final-sub001/dto"
	apperrors "github.com/abigaildinucci5-hue/tp-final-sub001/errors"
)

// Los proveedores OAuth son verificadores de identidad opacos: entra un
// code/token, sale {providerId, email, name}. Si el proveedor rechaza el
// intercambio, el error es OAUTH_EXCHANGE_FAILED.

// VerifyGoogleIDToken valida el ID token emitido por Google del lado del
// cliente y devuelve la identidad verificada
func VerifyGoogleIDToken(ctx context.Context, tokenId string) (dto.OAuthUser, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(ctx, tokenId, clientID)
	if err != nil {
		return dto.OAuthUser{}, apperrors.NewAppError(apperrors.ErrCodeOAuthExchange, "Google rechazó el token", err)
	}

	verified, _ := payload.Claims["email_verified"].(bool)
	if !verified {
		return dto.OAuthUser{}, apperrors.NewAppError(apperrors.ErrCodeOAuthExchange, "El email de Google no está verificado", nil)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return dto.OAuthUser{
		ProviderID: payload.Subject,
		Email:      email,
		Name:       name,
		Avatar:     picture,
	}, nil
}

func githubOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		Endpoint:     github.Endpoint,
	}
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// ExchangeGitHubCode canjea el authorization code del callback por la
// identidad del usuario vía la API de GitHub
func ExchangeGitHubCode(ctx context.Context, code string) (dto.OAuthUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conf := githubOAuthConfig()
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return dto.OAuthUser{}, apperrors.NewAppError(apperrors.ErrCodeOAuthExchange, "GitHub rechazó el code", err)
	}

	client := conf.Client(ctx, token)

	var ghUser githubUser
	if err := githubGet(ctx, client, "https://api.github.com/user", &ghUser); err != nil {
		return dto.OAuthUser{}, err
	}

	email := ghUser.Email
	if email == "" {
		// el email del perfil puede ser privado: se busca el primario verificado
		var emails []githubEmail
		if err := githubGet(ctx, client, "https://api.github.com/user/emails", &emails); err != nil {
			return dto.OAuthUser{}, err
		}
		for _, e := range emails {
			if e.Primary && e.Verified {
				email = e.Email
				break
			}
		}
	}
	if email == "" {
		return dto.OAuthUser{}, apperrors.NewAppError(apperrors.ErrCodeOAuthExchange, "GitHub no devolvió un email verificado", nil)
	}

	name := ghUser.Name
	if name == "" {
		name = ghUser.Login
	}

	return dto.OAuthUser{
		ProviderID: fmt.Sprintf("%d", ghUser.ID),
		Email:      email,
		Name:       name,
		Avatar:     ghUser.AvatarURL,
	}, nil
}

func githubGet(ctx context.Context, client *http.Client, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeOAuthExchange, "No se pudo consultar la API de GitHub", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewAppError(apperrors.ErrCodeOAuthExchange,
			fmt.Sprintf("La API de GitHub devolvió %d", resp.StatusCode), nil)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}
