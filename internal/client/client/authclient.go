package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gophtickets/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophtickets/internal/common"
	"github.com/dmitrijs2005/gophtickets/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Client is the contract API services depend on.
type Client interface {
	Do(ctx context.Context, r Request) (*http.Response, error)
	DoPublic(ctx context.Context, r Request) (*http.Response, error)
}

type AuthClient struct {
	baseURL           string
	http              *http.Client
	store             credentials.Repository
	log               logging.Logger
	onUnauthenticated func(ctx context.Context)
	refreshPath       string
	coalesce          bool

	refreshes singleflight.Group
}

func New(baseURL string, store credentials.Repository, opts ...Option) (*AuthClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}

	c := &AuthClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{},
		store:       store,
		log:         logging.Discard(),
		refreshPath: DefaultRefreshPath,
		coalesce:    true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do sends r with the stored bearer credential, refreshing the access token
// and retrying once if the backend answers 401.
func (c *AuthClient) Do(ctx context.Context, r Request) (*http.Response, error) {
	reqID := uuid.NewString()

	access, err := c.store.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return nil, fmt.Errorf("read access token: %w", err)
	}

	resp, err := c.send(ctx, r, reqID, access)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	refresh, err := c.store.Get(ctx, common.RefreshTokenKey)
	if err != nil {
		discard(resp)
		return nil, fmt.Errorf("read refresh token: %w", err)
	}
	if refresh == "" {
		c.forceLogout(ctx, reqID, "no refresh token")
		return resp, nil
	}

	newAccess, err := c.refresh(ctx, refresh)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			discard(resp)
			return nil, ctxErr
		}
		c.forceLogout(ctx, reqID, err.Error())
		return resp, nil
	}

	discard(resp)
	c.log.Debug(ctx, "retrying request with refreshed token", "request_id", reqID)

	return c.send(ctx, r, reqID, newAccess)
}

// DoPublic sends r without a credential and without the refresh cycle.
func (c *AuthClient) DoPublic(ctx context.Context, r Request) (*http.Response, error) {
	return c.send(ctx, r, uuid.NewString(), "")
}

func (c *AuthClient) refresh(ctx context.Context, refreshToken string) (string, error) {
	if !c.coalesce {
		return c.exchange(ctx, refreshToken)
	}

	// the shared call must not die with whichever waiter started it
	ch := c.refreshes.DoChan(refreshToken, func() (any, error) {
		return c.exchange(context.WithoutCancel(ctx), refreshToken)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			c.log.Debug(ctx, "joined in-flight token refresh")
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

type tokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// exchange trades the refresh token for a new access token and stores it.
func (c *AuthClient) exchange(ctx context.Context, refreshToken string) (string, error) {
	r, err := NewJSONRequest(http.MethodPost, c.refreshPath, map[string]string{"refresh": refreshToken})
	if err != nil {
		return "", err
	}

	resp, err := c.DoPublic(ctx, r)
	if err != nil {
		return "", err
	}
	defer discard(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrRefreshRejected, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRefreshRejected, err)
	}
	if tr.Access == "" {
		return "", fmt.Errorf("%w: empty access token", ErrRefreshRejected)
	}

	if tr.Refresh != "" {
		err = credentials.SetTokens(ctx, c.store, tr.Access, tr.Refresh)
	} else {
		err = c.store.Set(ctx, common.AccessTokenKey, tr.Access)
	}
	if err != nil {
		return "", fmt.Errorf("store refreshed token: %w", err)
	}

	c.log.Info(ctx, "access token refreshed", "rotated_refresh", tr.Refresh != "")
	return tr.Access, nil
}

// forceLogout clears both tokens and hands control to the on-unauthenticated
// handler. Running it on an empty store is harmless.
func (c *AuthClient) forceLogout(ctx context.Context, reqID, reason string) {
	c.log.Warn(ctx, "forced logout", "request_id", reqID, "reason", reason)

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear credentials", "error", err)
	}
	if c.onUnauthenticated != nil {
		c.onUnauthenticated(ctx)
	}
}

func (c *AuthClient) send(ctx context.Context, r Request, reqID, token string) (*http.Response, error) {
	req, err := c.build(ctx, r, reqID, token)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("send request: %w", err)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return resp, nil
}

func (c *AuthClient) build(ctx context.Context, r Request, reqID, token string) (*http.Request, error) {
	target, err := c.resolve(r.Target)
	if err != nil {
		return nil, err
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set(common.ContentTypeHeader, common.JSONContentType)
	for k, vs := range r.Header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}
	if req.Header.Get(common.RequestIDHeader) == "" {
		req.Header.Set(common.RequestIDHeader, reqID)
	}

	return req, nil
}

func (c *AuthClient) resolve(target string) (string, error) {
	if strings.TrimSpace(target) == "" {
		return "", ErrEmptyTarget
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid target %q: %w", target, err)
	}
	if u.IsAbs() {
		return target, nil
	}
	return c.baseURL + "/" + strings.TrimLeft(target, "/"), nil
}

// discard drains and closes a response body so the connection can be reused.
func discard(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}

// IsUnavailable reports whether err is a transport failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
