package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/stravadictos/internal/error_values"
	"github.com/limbo/stravadictos/pkg/httputil"
)

const (
	authorizeURL = "https://www.strava.com/oauth/authorize"
	tokenURL     = "https://www.strava.com/oauth/token"
)

// Authenticator produces the access token for the feed client. A token
// already present in the environment is used as is; otherwise the user is
// sent to Strava's authorize page and the code comes back on a local
// callback, which is then exchanged for a token.
type Authenticator struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	CallbackAddr string
	Scopes       []string

	httpClient *http.Client
	tokenURL   string
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

func NewAuthenticator(clientID, clientSecret, accessToken, callbackAddr string, scopes []string) *Authenticator {
	return &Authenticator{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		AccessToken:  accessToken,
		CallbackAddr: callbackAddr,
		Scopes:       scopes,
		httpClient:   &http.Client{Timeout: time.Second * 30},
		tokenURL:     tokenURL,
	}
}

// Token returns a usable access token, running the authorization code
// flow when none was configured.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	if a.AccessToken != "" {
		slog.Info("access granted with configured access token")
		return a.AccessToken, nil
	}
	code, err := a.waitForCode(ctx)
	if err != nil {
		return "", err
	}
	token, err := a.exchangeCode(ctx, code)
	if err != nil {
		return "", err
	}
	slog.Info("access granted with authorization code")
	return token, nil
}

// AuthorizeURL is the page the club admin has to visit to hand out the
// authorization code.
func (a *Authenticator) AuthorizeURL() string {
	query := url.Values{
		"client_id":     []string{a.ClientID},
		"redirect_uri":  []string{"http://" + a.CallbackAddr + "/authorization"},
		"response_type": []string{"code"},
		"scope":         []string{strings.Join(a.Scopes, ",")},
	}
	return authorizeURL + "?" + query.Encode()
}

func (a *Authenticator) waitForCode(ctx context.Context) (string, error) {
	codes := make(chan string, 1)
	mx := chi.NewMux()
	mx.Get("/authorization", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "missing code parameter", nil)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
			"status": "authorization received, you can close this tab",
		})
		select {
		case codes <- code:
		default:
		}
	})

	srv := &http.Server{Addr: a.CallbackAddr, Handler: mx}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("authorization callback server error", slog.String("error", err.Error()))
		}
	}()
	defer srv.Shutdown(context.Background())

	fmt.Println("Access required through code. Visit:")
	fmt.Println(a.AuthorizeURL())

	select {
	case code := <-codes:
		return code, nil
	case <-ctx.Done():
		return "", errorvalues.ErrNoAccessCode
	}
}

func (a *Authenticator) exchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"client_id":     []string{a.ClientID},
		"client_secret": []string{a.ClientSecret},
		"code":          []string{code},
		"grant_type":    []string{"authorization_code"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.New("building token request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", errors.New("exchanging code for token error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange failed with status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", errors.New("decoding token response error: " + err.Error())
	}
	if token.AccessToken == "" {
		return "", errorvalues.ErrUnauthorized
	}
	return token.AccessToken, nil
}
