package customers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/partsadmin/internal/client/api"
	"github.com/dmitrijs2005/partsadmin/internal/client/models"
	"github.com/dmitrijs2005/partsadmin/internal/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seed = []models.Customer{
	{CustomerID: "1", Name: "Acme Corp", Address: "1 Main St", City: "LA", State: "CA", Pincode: "90001"},
	{CustomerID: "2", Name: "Globex", Address: "Acme Plaza", City: "SF", State: "CA", Pincode: "94105"},
	{CustomerID: "3", Name: "Initech", Address: "99 Elm", City: "Austin", State: "TX", Pincode: "73301"},
	{CustomerID: "4", Name: "Umbrella", Address: "7 Oak", City: "LA", State: "CA", Pincode: "90001"},
}

type call struct {
	op, auth, arg string
}

type fakeFetcher struct {
	mu    sync.Mutex
	calls []call
	err   error
}

func (f *fakeFetcher) record(op, auth, arg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{op, auth, arg})
}

func (f *fakeFetcher) List(_ context.Context, auth string) ([]models.Customer, error) {
	f.record("all", auth, "")
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Customer(nil), seed...), nil
}

func (f *fakeFetcher) ListByState(_ context.Context, auth, state string) ([]models.Customer, error) {
	f.record("state", auth, state)
	if f.err != nil {
		return nil, f.err
	}
	return Apply(seed, Criteria{State: state}), nil
}

func (f *fakeFetcher) ListByCity(_ context.Context, auth, city string) ([]models.Customer, error) {
	f.record("city", auth, city)
	if f.err != nil {
		return nil, f.err
	}
	return Apply(seed, Criteria{City: city}), nil
}

func (f *fakeFetcher) Get(_ context.Context, auth, id string) (*models.Customer, error) {
	f.record("get", auth, id)
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range seed {
		if c.CustomerID.String() == id {
			return &c, nil
		}
	}
	return nil, &api.HTTPError{Status: 404}
}

func (f *fakeFetcher) ops() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

type fakeAuth struct {
	mu    sync.Mutex
	token string
}

func (a *fakeAuth) Authorization() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.token == "" {
		return "", false
	}
	return "Bearer " + a.token, true
}

func (a *fakeAuth) logout() {
	a.mu.Lock()
	a.token = ""
	a.mu.Unlock()
}

func newPipeline() (*Pipeline, *fakeFetcher, *fakeAuth) {
	f := &fakeFetcher{}
	a := &fakeAuth{token: "abc123"}
	return NewPipeline(f, a, nil), f, a
}

func ids(list []models.Customer) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.CustomerID.String())
	}
	return out
}

func TestPipeline_LoadCarriesToken(t *testing.T) {
	p, f, _ := newPipeline()

	require.NoError(t, p.Load(context.Background()))

	v := p.View()
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(v.Customers))
	assert.Equal(t, 4, v.Loaded)
	assert.False(t, v.Loading)
	assert.NoError(t, v.Err)
	assert.Equal(t, []call{{"all", "Bearer abc123", ""}}, f.ops())
}

func TestPipeline_AuthRequiredWithoutNetwork(t *testing.T) {
	p, f, a := newPipeline()
	require.NoError(t, p.Load(context.Background()))
	a.logout()

	ctx := context.Background()
	assert.ErrorIs(t, p.Load(ctx), common.ErrAuthRequired)
	assert.ErrorIs(t, p.SelectState(ctx, "CA"), common.ErrAuthRequired)
	assert.ErrorIs(t, p.SelectCity(ctx, "LA"), common.ErrAuthRequired)
	assert.ErrorIs(t, p.Clear(ctx), common.ErrAuthRequired)
	assert.ErrorIs(t, p.Retry(ctx), common.ErrAuthRequired)
	_, err := p.Detail(ctx, "1")
	assert.ErrorIs(t, err, common.ErrAuthRequired)

	assert.Len(t, f.ops(), 1, "only the initial load reached the network")
	v := p.View()
	assert.Equal(t, "Authentication required", v.Err.Error())
	assert.False(t, v.Loading)
	assert.Empty(t, v.Customers, "records of the previous session are dropped")
	assert.Zero(t, v.Loaded)
	assert.Equal(t, Options{States: []string{}, Cities: []string{}, Pincodes: []string{}}, p.Options())
}

func TestPipeline_EmptySearchIsIdentity(t *testing.T) {
	p, _, _ := newPipeline()
	require.NoError(t, p.Load(context.Background()))
	before := p.View()

	after := p.SetSearchTerm("")
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("empty search changed the view (-before +after):\n%s", diff)
	}
}

func TestPipeline_SearchAndPincodeDoNotFetch(t *testing.T) {
	p, f, _ := newPipeline()
	require.NoError(t, p.Load(context.Background()))

	v := p.SetSearchTerm("acme")
	assert.Equal(t, []string{"1", "2"}, ids(v.Customers), "name or address, case-insensitive")

	v = p.SetPincode("90001")
	assert.Equal(t, []string{"1"}, ids(v.Customers))

	v = p.SetSearchTerm("")
	assert.Equal(t, []string{"1", "4"}, ids(v.Customers))
	assert.Equal(t, 4, v.Loaded)

	assert.Len(t, f.ops(), 1)
}

func TestPipeline_StateCityScenario(t *testing.T) {
	p, f, _ := newPipeline()
	ctx := context.Background()
	require.NoError(t, p.Load(ctx))

	require.NoError(t, p.SelectState(ctx, "CA"))
	v := p.View()
	assert.Equal(t, "CA", v.Criteria.State)
	assert.Equal(t, 3, v.Loaded)

	require.NoError(t, p.SelectCity(ctx, "LA"))
	v = p.View()
	assert.Equal(t, "LA", v.Criteria.City)
	assert.Equal(t, []string{"1", "4"}, ids(v.Customers))

	require.NoError(t, p.SelectState(ctx, ""))
	v = p.View()
	assert.Empty(t, v.Criteria.City)
	assert.Empty(t, v.Criteria.State)
	assert.Equal(t, 4, v.Loaded)

	assert.Equal(t, []call{
		{"all", "Bearer abc123", ""},
		{"state", "Bearer abc123", "CA"},
		{"city", "Bearer abc123", "LA"},
		{"all", "Bearer abc123", ""},
	}, f.ops())
}

func TestPipeline_SelectStateClearsCity(t *testing.T) {
	p, _, _ := newPipeline()
	ctx := context.Background()
	require.NoError(t, p.SelectCity(ctx, "Austin"))
	require.NoError(t, p.SelectState(ctx, "TX"))

	v := p.View()
	assert.Equal(t, "TX", v.Criteria.State)
	assert.Empty(t, v.Criteria.City)
}

func TestPipeline_ClearingCityFetchesAll(t *testing.T) {
	p, f, _ := newPipeline()
	ctx := context.Background()
	require.NoError(t, p.SelectCity(ctx, "LA"))
	require.NoError(t, p.SelectCity(ctx, ""))

	ops := f.ops()
	assert.Equal(t, "all", ops[len(ops)-1].op)
	assert.Equal(t, 4, p.View().Loaded)
}

func TestPipeline_ClearEqualsFetchAll(t *testing.T) {
	fresh, _, _ := newPipeline()
	require.NoError(t, fresh.Load(context.Background()))
	want := fresh.View()

	p, _, _ := newPipeline()
	ctx := context.Background()
	require.NoError(t, p.SelectState(ctx, "CA"))
	require.NoError(t, p.SelectCity(ctx, "LA"))
	p.SetSearchTerm("umb")
	p.SetPincode("90001")

	require.NoError(t, p.Clear(ctx))
	if diff := cmp.Diff(want, p.View()); diff != "" {
		t.Fatalf("clear differs from fetch-all (-want +got):\n%s", diff)
	}

	require.NoError(t, p.Clear(ctx))
	assert.Empty(t, cmp.Diff(want, p.View()))
}

func TestPipeline_FetchErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		run  func(p *Pipeline) error
		want string
	}{
		{"all generic", &api.HTTPError{Status: 500}, func(p *Pipeline) error { return p.Load(context.Background()) }, "Failed to fetch customers"},
		{"state generic", api.ErrUnreachable, func(p *Pipeline) error { return p.SelectState(context.Background(), "CA") }, "Failed to fetch customers by state"},
		{"city generic", &api.HTTPError{Status: 503}, func(p *Pipeline) error { return p.SelectCity(context.Background(), "LA") }, "Failed to fetch customers by city"},
		{"backend message", &api.HTTPError{Status: 401, Message: "Invalid token"}, func(p *Pipeline) error { return p.Load(context.Background()) }, "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, f, _ := newPipeline()
			require.NoError(t, p.Load(context.Background()))
			f.err = tt.err

			err := tt.run(p)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.True(t, errors.Is(err, tt.err) || errors.As(err, new(*api.HTTPError)))

			v := p.View()
			assert.Equal(t, tt.want, v.Err.Error())
			assert.False(t, v.Loading)
			assert.Equal(t, 4, v.Loaded, "previous working set kept")
		})
	}
}

func TestPipeline_RetryRecovers(t *testing.T) {
	p, f, _ := newPipeline()
	f.err = api.ErrUnreachable
	require.Error(t, p.Load(context.Background()))
	assert.Equal(t, 0, p.View().Loaded)

	f.err = nil
	require.NoError(t, p.Retry(context.Background()))
	v := p.View()
	assert.NoError(t, v.Err)
	assert.Equal(t, 4, v.Loaded)
	assert.Equal(t, "all", f.ops()[1].op)
}

func TestPipeline_Options(t *testing.T) {
	p, _, _ := newPipeline()
	require.NoError(t, p.Load(context.Background()))

	assert.Equal(t, Options{
		States:   []string{"CA", "TX"},
		Cities:   []string{"Austin", "LA", "SF"},
		Pincodes: []string{"73301", "90001", "94105"},
	}, p.Options())
}

func TestPipeline_Detail(t *testing.T) {
	p, f, _ := newPipeline()

	c, err := p.Detail(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Initech", c.Name)
	assert.Equal(t, call{"get", "Bearer abc123", "3"}, f.ops()[0])

	_, err = p.Detail(context.Background(), "nope")
	assert.EqualError(t, err, "Failed to fetch customer details")
}

func TestPipeline_SubscribeSeesLoadingThenResult(t *testing.T) {
	p, _, _ := newPipeline()
	var loading []bool
	unsub := p.Subscribe(func(v View) { loading = append(loading, v.Loading) })

	require.NoError(t, p.Load(context.Background()))
	assert.Equal(t, []bool{true, false}, loading)

	unsub()
	p.SetSearchTerm("x")
	assert.Len(t, loading, 2)
}

// gatedFetcher holds every List call until released, so results can be
// delivered out of order.
type gatedFetcher struct {
	fakeFetcher
	started chan string
	release map[string]chan []models.Customer
}

func (g *gatedFetcher) ListByState(_ context.Context, _ string, state string) ([]models.Customer, error) {
	g.started <- state
	return <-g.release[state], nil
}

func TestPipeline_LastIssuedFetchWins(t *testing.T) {
	g := &gatedFetcher{
		started: make(chan string, 2),
		release: map[string]chan []models.Customer{
			"CA": make(chan []models.Customer),
			"TX": make(chan []models.Customer),
		},
	}
	p := NewPipeline(g, &fakeAuth{token: "t"}, nil)
	ctx := context.Background()

	first := make(chan error, 1)
	go func() { first <- p.SelectState(ctx, "CA") }()
	require.Equal(t, "CA", <-g.started)

	second := make(chan error, 1)
	go func() { second <- p.SelectState(ctx, "TX") }()
	require.Equal(t, "TX", <-g.started)

	g.release["TX"] <- Apply(seed, Criteria{State: "TX"})
	require.NoError(t, <-second)
	assert.False(t, p.View().Loading)

	// the older request resolves last and must not overwrite
	g.release["CA"] <- Apply(seed, Criteria{State: "CA"})
	require.NoError(t, <-first)

	v := p.View()
	assert.Equal(t, []string{"3"}, ids(v.Customers))
	assert.Equal(t, "TX", v.Criteria.State)
	assert.False(t, v.Loading)
}
