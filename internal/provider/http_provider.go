package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/alzin/comy-chatsync/internal/config"
	"github.com/alzin/comy-chatsync/internal/entity"
)

// HTTPProvider fetches conversation snapshots from the chat API
type HTTPProvider struct {
	baseURL    string
	httpClient *client.Client
	token      string
}

// Option is a function to configure the provider
type Option func(*HTTPProvider)

// WithHertzClient sets a custom Hertz client
func WithHertzClient(httpClient *client.Client) Option {
	return func(p *HTTPProvider) {
		p.httpClient = httpClient
	}
}

// WithToken sets the session token sent as bearer auth
func WithToken(token string) Option {
	return func(p *HTTPProvider) {
		p.token = token
	}
}

// NewHTTPProvider creates a new HTTPProvider
func NewHTTPProvider(cfg *config.APIConfig, opts ...Option) (*HTTPProvider, error) {
	httpClient, err := client.NewClient(
		client.WithDialTimeout(cfg.DialTimeout),
		client.WithClientReadTimeout(cfg.ReadTimeout),
		client.WithWriteTimeout(cfg.WriteTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http client: %w", err)
	}

	p := &HTTPProvider{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// SetToken replaces the session token
func (p *HTTPProvider) SetToken(token string) {
	p.token = token
}

// FetchConversations fetches the complete conversation listing for the
// viewer. The payload is a plain JSON array of conversation entries.
func (p *HTTPProvider) FetchConversations(ctx context.Context, viewerId string) ([]*entity.RawConversation, error) {
	query := url.Values{}
	query.Set("viewer_id", viewerId)
	reqURL := p.baseURL + "/api/chats?" + query.Encode()

	req := &protocol.Request{}
	resp := &protocol.Response{}

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(reqURL)

	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	if err := p.httpClient.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode() != consts.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching conversations", resp.StatusCode())
	}

	var raws []*entity.RawConversation
	if err := json.Unmarshal(resp.Body(), &raws); err != nil {
		return nil, fmt.Errorf("failed to decode conversations: %w", err)
	}

	return raws, nil
}
