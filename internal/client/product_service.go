// Package client calls the catalog HTTP API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/talkincode/tinyshop/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ProductService wraps the /api/Product routes.
// A not-found product and a failed call look the same to the caller:
// both yield nil, false or an empty list.
type ProductService struct {
	baseURL string
	hc      *http.Client
}

// NewProductService targets baseURL (scheme://host[:port]) with the given
// http client; nil uses http.DefaultClient
func NewProductService(baseURL string, hc *http.Client) *ProductService {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &ProductService{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      hc,
	}
}

func (s *ProductService) url(format string, a ...interface{}) string {
	return s.baseURL + "/api/Product" + fmt.Sprintf(format, a...)
}

// call runs the request and reports whether it ended in a 2xx status
func (s *ProductService) call(op string, df *dataflow.DataFlow, body *string) bool {
	var code int
	err := df.BindBody(body).Code(&code).Do()
	if err != nil {
		zap.L().Debug("client: request failed", zap.String("op", op), zap.Error(err))
		return false
	}
	if code < 200 || code > 299 {
		zap.L().Debug("client: unexpected status", zap.String("op", op), zap.Int("status", code))
		return false
	}
	return true
}

func decodeProduct(op, body string) *domain.Product {
	var p domain.Product
	if err := json.UnmarshalFromString(body, &p); err != nil {
		zap.L().Debug("client: decode failed", zap.String("op", op), zap.Error(err))
		return nil
	}
	return &p
}

// GetByID returns the product or nil
func (s *ProductService) GetByID(ctx context.Context, id int64) *domain.Product {
	var body string
	if !s.call("get", gout.New(s.hc).GET(s.url("/%d", id)).WithContext(ctx), &body) {
		return nil
	}
	return decodeProduct("get", body)
}

// Create posts the product and returns it with the assigned id, or nil
func (s *ProductService) Create(ctx context.Context, p *domain.Product) *domain.Product {
	var body string
	if !s.call("create", gout.New(s.hc).POST(s.url("")).WithContext(ctx).SetJSON(p), &body) {
		return nil
	}
	return decodeProduct("create", body)
}

// Update replaces the product stored under id
func (s *ProductService) Update(ctx context.Context, id int64, p *domain.Product) bool {
	var body string
	return s.call("update", gout.New(s.hc).PUT(s.url("/%d", id)).WithContext(ctx).SetJSON(p), &body)
}

// Delete removes the product stored under id
func (s *ProductService) Delete(ctx context.Context, id int64) bool {
	var body string
	return s.call("delete", gout.New(s.hc).DELETE(s.url("/%d", id)).WithContext(ctx), &body)
}

// List returns every product, empty on failure
func (s *ProductService) List(ctx context.Context) []*domain.Product {
	rows := []*domain.Product{}
	var body string
	if !s.call("list", gout.New(s.hc).GET(s.url("")).WithContext(ctx), &body) {
		return rows
	}
	if err := json.UnmarshalFromString(body, &rows); err != nil {
		zap.L().Debug("client: decode failed", zap.String("op", "list"), zap.Error(err))
		return []*domain.Product{}
	}
	if rows == nil {
		return []*domain.Product{}
	}
	return rows
}
