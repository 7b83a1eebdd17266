// Package stripe 通过 Stripe Checkout 收款。只依赖 REST API，
// 表单编码创建 Checkout Session 并返回托管支付页 URL。
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrConfigInvalid   = errors.New("stripe config invalid")
	ErrRequestFailed   = errors.New("stripe request failed")
	ErrResponseInvalid = errors.New("stripe response invalid")
)

const (
	defaultAPIBaseURL = "https://api.stripe.com"
	defaultTimeout    = 12 * time.Second
)

var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "JPY": {}, "KMF": {},
	"KRW": {}, "MGA": {}, "PYG": {}, "RWF": {}, "UGX": {}, "VND": {},
	"VUV": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

// Config Stripe 渠道配置
type Config struct {
	SecretKey  string
	APIBaseURL string
	Currency   string
	SuccessURL string
	CancelURL  string
	Timeout    time.Duration
}

// LineItem Checkout Session 的一行商品
type LineItem struct {
	Name        string
	Description string
	UnitAmount  decimal.Decimal
	Quantity    int
}

// Session 创建 Checkout Session 的结果
type Session struct {
	ID     string
	URL    string
	Status string
}

// Client Stripe REST 客户端
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient 创建客户端并校验配置
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, fmt.Errorf("%w: secret_key is required", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.SuccessURL) == "" || strings.TrimSpace(cfg.CancelURL) == "" {
		return nil, fmt.Errorf("%w: success_url and cancel_url are required", ErrConfigInvalid)
	}
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	cfg.Currency = strings.ToLower(strings.TrimSpace(cfg.Currency))
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}, nil
}

// CreateCheckoutSession 为一组商品行创建 Checkout Session
func (c *Client) CreateCheckoutSession(ctx context.Context, items []LineItem) (*Session, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no line items", ErrConfigInvalid)
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", c.cfg.SuccessURL)
	form.Set("cancel_url", c.cfg.CancelURL)
	form.Add("payment_method_types[]", "card")
	for i, item := range items {
		minor, err := toMinorAmount(item.UnitAmount, c.cfg.Currency)
		if err != nil {
			return nil, err
		}
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
		form.Set(prefix+"[price_data][currency]", c.cfg.Currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(minor, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if desc := strings.TrimSpace(item.Description); desc != "" {
			form.Set(prefix+"[price_data][product_data][description]", desc)
		}
	}

	body, statusCode, err := c.doFormRequest(ctx, http.MethodPost, "/v1/checkout/sessions", form)
	if err != nil {
		return nil, err
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, fmt.Errorf("%w: create checkout session status %d", ErrResponseInvalid, statusCode)
	}

	var raw struct {
		ID     string `json:"id"`
		URL    string `json:"url"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode response failed", ErrResponseInvalid)
	}
	if raw.ID == "" || raw.URL == "" {
		return nil, fmt.Errorf("%w: missing session id or url", ErrResponseInvalid)
	}
	return &Session{ID: raw.ID, URL: raw.URL, Status: raw.Status}, nil
}

func (c *Client) doFormRequest(ctx context.Context, method, path string, form url.Values) ([]byte, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	endpoint := c.cfg.APIBaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: build request failed", ErrRequestFailed)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response failed", ErrResponseInvalid)
	}
	return body, resp.StatusCode, nil
}

// toMinorAmount 把十进制金额换算为最小货币单位，零小数位货币不乘 100
func toMinorAmount(amount decimal.Decimal, currency string) (int64, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: amount must be greater than zero", ErrConfigInvalid)
	}
	scale := int32(2)
	if _, ok := zeroDecimalCurrencies[strings.ToUpper(currency)]; ok {
		scale = 0
	}
	minor := amount.Shift(scale).Round(0)
	return minor.IntPart(), nil
}
