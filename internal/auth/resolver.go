package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Identity is the resolved caller. The metric engine never branches on it;
// only the HTTP boundary does.
type Identity struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// ErrUnknownIdentity is returned when the caller id cannot be resolved.
var ErrUnknownIdentity = errors.New("unknown identity")

// Resolver turns the caller id from the identity header into an Identity,
// once per request.
type Resolver interface {
	Resolve(ctx context.Context, userID string) (Identity, error)
}

// StaticResolver resolves against a fixed admin id list, for deployments
// without an auth service.
type StaticResolver struct {
	admins map[string]struct{}
}

func NewStaticResolver(adminIDs []string) *StaticResolver {
	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &StaticResolver{admins: admins}
}

func (r *StaticResolver) Resolve(_ context.Context, userID string) (Identity, error) {
	if userID == "" {
		return Identity{}, ErrUnknownIdentity
	}
	_, isAdmin := r.admins[userID]
	return Identity{UserID: userID, IsAdmin: isAdmin}, nil
}

// HTTPResolver asks an external auth service who the caller is.
type HTTPResolver struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPResolver(baseURL string) *HTTPResolver {
	return &HTTPResolver{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (r *HTTPResolver) Resolve(ctx context.Context, userID string) (Identity, error) {
	if userID == "" {
		return Identity{}, ErrUnknownIdentity
	}
	endpoint := fmt.Sprintf("%s/users/%s", r.BaseURL, url.PathEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Identity{}, fmt.Errorf("auth: build request: %w", err)
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("auth: resolve %q: %w", userID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return Identity{}, ErrUnknownIdentity
	default:
		return Identity{}, fmt.Errorf("auth: resolve %q: unexpected status %d", userID, resp.StatusCode)
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return Identity{}, fmt.Errorf("auth: decode identity: %w", err)
	}
	if identity.UserID == "" {
		identity.UserID = userID
	}
	return identity, nil
}

// FromConfig picks a resolver for the deployment: the auth service when
// configured, the static admin list otherwise, nil (open access, development
// only) when neither is set.
func FromConfig(authServiceURL string, adminIDs []string) Resolver {
	if authServiceURL != "" {
		return NewHTTPResolver(authServiceURL)
	}
	if len(adminIDs) > 0 {
		return NewStaticResolver(adminIDs)
	}
	return nil
}
