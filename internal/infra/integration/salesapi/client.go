package salesapi

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/xavierca1/ligue-vendas/internal/entity"
)

type ClientOpts struct {
	BaseURL      string
	Timeout      time.Duration
	ServiceToken string
}

// Client fala com o backend de vendas usado pelo app.
type Client struct {
	httpClient   *resty.Client
	serviceToken string
}

func NewClient(opts ClientOpts) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	c := &Client{serviceToken: opts.ServiceToken}
	c.httpClient = resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": "ligue-vendas/1.0",
		})

	return c
}

func (c *Client) req(ctx context.Context, token string, result any) *resty.Request {
	if token == "" {
		token = c.serviceToken
	}

	request := c.httpClient.NewRequest().SetContext(ctx)
	if token != "" {
		request.SetAuthToken(token)
	}
	if result != nil {
		request.SetResult(result)
	}
	return request
}

func (c *Client) ListProducts(ctx context.Context, token string) ([]entity.Product, error) {
	result := &listResponse[productDTO]{}
	if _, err := handleError(c.req(ctx, token, result).Get("/products")); err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(result.Data))
	for _, d := range result.Data {
		products = append(products, d.toEntity())
	}
	return products, nil
}

func (c *Client) ListCategories(ctx context.Context, token string) ([]entity.Category, error) {
	result := &listResponse[categoryDTO]{}
	if _, err := handleError(c.req(ctx, token, result).Get("/categories")); err != nil {
		return nil, err
	}

	categories := make([]entity.Category, 0, len(result.Data))
	for _, d := range result.Data {
		categories = append(categories, d.toEntity())
	}
	return categories, nil
}

func (c *Client) ListLeads(ctx context.Context, token, userID string) ([]entity.RawLead, error) {
	result := &listResponse[leadDTO]{}
	_, err := handleError(c.req(ctx, token, result).
		SetPathParams(map[string]string{"userId": userID}).
		Get("/leads/user/{userId}"))
	if err != nil {
		return nil, err
	}

	leads := make([]entity.RawLead, 0, len(result.Data))
	for _, d := range result.Data {
		leads = append(leads, d.toEntity())
	}
	return leads, nil
}

// handleError transforma resposta >399 em erro; o resty sozinho devolve nil.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf("request failed: %s %s (status: %d)", res.Request.Method, res.Request.URL, res.StatusCode())
	}
	return res, nil
}
