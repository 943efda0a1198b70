package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/common"
	"github.com/ifti227i/RideShareX/internal/logging"
	"github.com/ifti227i/RideShareX/internal/netx"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// do sends req and maps transport failures and gateway errors to
// ErrUnavailable. The caller owns the body of a returned response.
func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		if netx.IsUnreachable(err) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		_ = netx.ReadErrorBody(resp)
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	return resp, nil
}

// FetchWithAuth sends req with the stored bearer token, if any. A 401
// clears the session and yields common.ErrSessionExpired.
func (c *HTTPClient) FetchWithAuth(ctx context.Context, req *http.Request) (*http.Response, error) {
	token, ok, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	if ok && token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_ = netx.ReadErrorBody(resp)
		c.log.Info(ctx, "session rejected by server, clearing", "path", req.URL.Path)
		if err := c.tokens.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear session: %w", err)
		}
		return nil, common.ErrSessionExpired
	}
	return resp, nil
}

// expectOK turns a non-2xx response into an error and closes its body.
// A 2xx response is returned to the caller untouched.
func expectOK(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	msg := netx.ReadErrorBody(resp)
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return &StatusError{Code: resp.StatusCode, Message: msg}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	req, err := netx.NewJSONRequest(ctx, http.MethodPost, netx.JoinURL(c.baseURL, "api", "auth", "login"), body)
	if err != nil {
		return LoginResponse{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return LoginResponse{}, err
	}
	if err := expectOK(resp); err != nil {
		return LoginResponse{}, err
	}

	var out LoginResponse
	if err := netx.DecodeJSON(resp, &out); err != nil {
		return LoginResponse{}, err
	}
	if out.Token == "" {
		return LoginResponse{}, ErrEmptyToken
	}
	return out, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	req, err := netx.NewJSONRequest(ctx, http.MethodPost, netx.JoinURL(c.baseURL, "api", "auth", "register"), body)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	if err := expectOK(resp); err != nil {
		return err
	}
	// Any confirmation body is accepted.
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

func (c *HTTPClient) GetUser(ctx context.Context, id models.ID) (models.User, error) {
	return c.userCall(ctx, http.MethodGet, id, nil)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id models.ID, update models.ProfileUpdate) (models.User, error) {
	return c.userCall(ctx, http.MethodPatch, id, update)
}

func (c *HTTPClient) userCall(ctx context.Context, method string, id models.ID, body any) (models.User, error) {
	req, err := netx.NewJSONRequest(ctx, method, netx.JoinURL(c.baseURL, "api", "users", id.String()), body)
	if err != nil {
		return models.User{}, err
	}

	resp, err := c.FetchWithAuth(ctx, req)
	if err != nil {
		return models.User{}, err
	}
	if err := expectOK(resp); err != nil {
		return models.User{}, err
	}

	var u models.User
	if err := netx.DecodeJSON(resp, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (c *HTTPClient) AvailableRides(ctx context.Context) ([]models.Rider, error) {
	req, err := netx.NewJSONRequest(ctx, http.MethodGet, netx.JoinURL(c.baseURL, "rides"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.FetchWithAuth(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := expectOK(resp); err != nil {
		return nil, err
	}

	var riders []models.Rider
	if err := netx.DecodeJSON(resp, &riders); err != nil {
		return nil, err
	}
	return riders, nil
}

// Ping reports whether the API answers at all; any HTTP status counts.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, netx.JoinURL(c.baseURL, "api", "health"), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// OAuthURL is the browser entry point for the given provider's login flow.
func (c *HTTPClient) OAuthURL(provider string) string {
	return netx.JoinURL(c.baseURL, "oauth2", "authorization", strings.ToLower(provider))
}
