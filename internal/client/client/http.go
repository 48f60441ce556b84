package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/synckeeper/internal/client/models"
)

// HTTPGateway talks to a REST resource shaped like dummyjson's:
//
//	GET    /{resource}              -> {"{resource}": [...], "total": n}
//	GET    /{resource}/search?q=... -> same envelope
//	POST   /{resource}/add          -> created entity
//	PUT    /{resource}/{id}         -> updated entity
//	DELETE /{resource}/{id}         -> deleted entity
//
// Every call carries the TokenSource's token as a bearer credential when
// one is available.
type HTTPGateway[T models.Entity] struct {
	*transport
	resource string
	tokens   TokenSource
}

func NewHTTPGateway[T models.Entity](baseURL, resource string, tokens TokenSource, opts ...Option) *HTTPGateway[T] {
	if tokens == nil {
		tokens = StaticToken("")
	}
	return &HTTPGateway[T]{
		transport: newTransport(baseURL, opts...),
		resource:  resource,
		tokens:    tokens,
	}
}

func (g *HTTPGateway[T]) FetchAll(ctx context.Context) (List[T], error) {
	return g.fetchList(ctx, "/"+g.resource)
}

func (g *HTTPGateway[T]) FetchByQuery(ctx context.Context, q string) (List[T], error) {
	return g.fetchList(ctx, "/"+g.resource+"/search?q="+url.QueryEscape(q))
}

func (g *HTTPGateway[T]) fetchList(ctx context.Context, path string) (List[T], error) {
	var envelope map[string]json.RawMessage
	if err := g.do(ctx, http.MethodGet, path, g.tokens.Token(), nil, &envelope); err != nil {
		return List[T]{}, err
	}

	raw, ok := envelope[g.resource]
	if !ok {
		return List[T]{}, fmt.Errorf("decode response: missing %q list", g.resource)
	}

	list := List[T]{}
	if err := json.Unmarshal(raw, &list.Items); err != nil {
		return List[T]{}, fmt.Errorf("decode %s: %w", g.resource, err)
	}
	if list.Items == nil {
		list.Items = []T{}
	}

	if rawTotal, ok := envelope["total"]; ok {
		if err := json.Unmarshal(rawTotal, &list.Total); err != nil {
			return List[T]{}, fmt.Errorf("decode total: %w", err)
		}
	}
	return list, nil
}

func (g *HTTPGateway[T]) Create(ctx context.Context, payload T) (T, error) {
	var created T
	err := g.do(ctx, http.MethodPost, "/"+g.resource+"/add", g.tokens.Token(), payload, &created)
	return created, err
}

func (g *HTTPGateway[T]) Update(ctx context.Context, entity T) (T, error) {
	var updated T
	path := fmt.Sprintf("/%s/%d", g.resource, entity.GetID())
	err := g.do(ctx, http.MethodPut, path, g.tokens.Token(), entity, &updated)
	return updated, err
}

func (g *HTTPGateway[T]) Delete(ctx context.Context, id int) (int, error) {
	var deleted struct {
		ID int `json:"id"`
	}
	path := fmt.Sprintf("/%s/%d", g.resource, id)
	if err := g.do(ctx, http.MethodDelete, path, g.tokens.Token(), nil, &deleted); err != nil {
		return 0, err
	}
	if deleted.ID == 0 {
		deleted.ID = id
	}
	return deleted.ID, nil
}
