package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/synckeeper/internal/client/client"
	"github.com/dmitrijs2005/synckeeper/internal/client/models"
)

// ---- fake gateway ----

type fakeGateway[T models.Entity] struct {
	mu sync.Mutex

	FetchAllRet     []T
	FetchAllTotal   int
	FetchAllErr     error
	FetchByQueryRet map[string][]T
	FetchByQueryErr error
	CreateRet       T
	CreateErr       error
	UpdateRet       *T
	UpdateErr       error
	DeleteRet       int
	DeleteErr       error

	// Block, when set for a query ("" for FetchAll), holds the fetch until
	// the channel is closed.
	Block map[string]chan struct{}

	Calls      int
	LastQuery  string
	LastCreate T
	LastUpdate T
	LastDelete int
}

func (f *fakeGateway[T]) wait(ctx context.Context, q string) error {
	f.mu.Lock()
	ch := f.Block[q]
	f.mu.Unlock()
	if ch == nil {
		return nil
	}
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeGateway[T]) FetchAll(ctx context.Context) (client.List[T], error) {
	f.mu.Lock()
	f.Calls++
	f.mu.Unlock()

	if err := f.wait(ctx, ""); err != nil {
		return client.List[T]{}, err
	}
	return client.List[T]{Items: f.FetchAllRet, Total: f.FetchAllTotal}, f.FetchAllErr
}

func (f *fakeGateway[T]) FetchByQuery(ctx context.Context, q string) (client.List[T], error) {
	f.mu.Lock()
	f.Calls++
	f.LastQuery = q
	f.mu.Unlock()

	if err := f.wait(ctx, q); err != nil {
		return client.List[T]{}, err
	}
	if f.FetchByQueryErr != nil {
		return client.List[T]{}, f.FetchByQueryErr
	}
	return client.List[T]{Items: f.FetchByQueryRet[q]}, nil
}

func (f *fakeGateway[T]) Create(ctx context.Context, payload T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.LastCreate = payload
	return f.CreateRet, f.CreateErr
}

func (f *fakeGateway[T]) Update(ctx context.Context, entity T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.LastUpdate = entity
	if f.UpdateErr != nil {
		var zero T
		return zero, f.UpdateErr
	}
	if f.UpdateRet != nil {
		return *f.UpdateRet, nil
	}
	return entity, nil
}

func (f *fakeGateway[T]) Delete(ctx context.Context, id int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.LastDelete = id
	if f.DeleteErr != nil {
		return 0, f.DeleteErr
	}
	if f.DeleteRet != 0 {
		return f.DeleteRet, nil
	}
	return id, nil
}

func (f *fakeGateway[T]) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls
}

// ---- fake gate ----

type fakeGate struct {
	Err    error
	Checks int
}

func (g *fakeGate) Check() error {
	g.Checks++
	return g.Err
}

// ---- fake authenticator ----

type fakeAuthenticator struct {
	Ret models.Session
	Err error

	Calls    int
	LastUser string
	LastPass string
}

func (f *fakeAuthenticator) Login(ctx context.Context, username, password string) (models.Session, error) {
	f.Calls++
	f.LastUser = username
	f.LastPass = password
	return f.Ret, f.Err
}

// ---- fake session repository ----

type fakeSessionRepo struct {
	LoadRet models.Session
	LoadOK  bool
	LoadErr error

	SaveErr  error
	ClearErr error

	Saved   []models.Session
	Cleared int
}

func (f *fakeSessionRepo) Load(ctx context.Context) (models.Session, bool, error) {
	return f.LoadRet, f.LoadOK, f.LoadErr
}

func (f *fakeSessionRepo) Save(ctx context.Context, s models.Session) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Saved = append(f.Saved, s)
	return nil
}

func (f *fakeSessionRepo) Clear(ctx context.Context) error {
	f.Cleared++
	return f.ClearErr
}

func posts(ids ...int) []models.Post {
	out := make([]models.Post, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Post{ID: id, Title: "post", Body: "body"})
	}
	return out
}
