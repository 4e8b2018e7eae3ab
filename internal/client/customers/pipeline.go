// Package customers is the customer list pipeline: it fetches a working set
// through the proxy and narrows it with client-side predicates.
//
// There are two tiers. State and city selections change what is fetched
// (each replaces the working set); the search term and pincode only change
// what is displayed from the set already loaded. Every fetch is tagged with
// a generation number and only the most recently issued one may publish.
package customers

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/partsadmin/internal/client/models"
	"github.com/dmitrijs2005/partsadmin/internal/common"
	"github.com/dmitrijs2005/partsadmin/internal/logging"
)

// Fetcher reads customers. The authorization value is passed on each call.
// Implemented by *api.CustomersClient.
type Fetcher interface {
	List(ctx context.Context, authorization string) ([]models.Customer, error)
	ListByState(ctx context.Context, authorization, state string) ([]models.Customer, error)
	ListByCity(ctx context.Context, authorization, city string) ([]models.Customer, error)
	Get(ctx context.Context, authorization, id string) (*models.Customer, error)
}

// Authorizer supplies the current Authorization header value. Implemented by
// *session.Manager.
type Authorizer interface {
	Authorization() (string, bool)
}

// View is what the presentation layer renders.
type View struct {
	// Customers is the loaded set filtered by Criteria.
	Customers []models.Customer
	// Loaded is the size of the unfiltered working set.
	Loaded   int
	Criteria Criteria
	Loading  bool
	Err      error
}

type mode int

const (
	modeAll mode = iota
	modeState
	modeCity
)

type Pipeline struct {
	fetcher Fetcher
	auth    Authorizer
	log     logging.Logger

	mu       sync.Mutex
	loaded   []models.Customer
	criteria Criteria
	loading  bool
	err      error
	gen      uint64

	lmu       sync.Mutex
	listeners map[int]func(View)
	nextID    int
}

func NewPipeline(f Fetcher, a Authorizer, log logging.Logger) *Pipeline {
	if log == nil {
		log = logging.Nop()
	}
	return &Pipeline{
		fetcher:   f,
		auth:      a,
		log:       log.With("module", "customers"),
		loaded:    []models.Customer{},
		listeners: map[int]func(View){},
	}
}

// View returns the current view.
func (p *Pipeline) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewLocked()
}

func (p *Pipeline) viewLocked() View {
	return View{
		Customers: Apply(p.loaded, p.criteria),
		Loaded:    len(p.loaded),
		Criteria:  p.criteria,
		Loading:   p.loading,
		Err:       p.err,
	}
}

// Options returns the selectable values of the loaded set.
func (p *Pipeline) Options() Options {
	p.mu.Lock()
	defer p.mu.Unlock()
	return OptionsOf(p.loaded)
}

// Subscribe registers fn for every view change.
func (p *Pipeline) Subscribe(fn func(View)) (unsubscribe func()) {
	p.lmu.Lock()
	p.nextID++
	id := p.nextID
	p.listeners[id] = fn
	p.lmu.Unlock()

	return func() {
		p.lmu.Lock()
		delete(p.listeners, id)
		p.lmu.Unlock()
	}
}

func (p *Pipeline) publish(v View) {
	p.lmu.Lock()
	ids := make([]int, 0, len(p.listeners))
	for id := range p.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(View), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, p.listeners[id])
	}
	p.lmu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// mutate applies fn to the criteria under the lock and republishes.
func (p *Pipeline) mutate(fn func(c *Criteria)) View {
	p.mu.Lock()
	fn(&p.criteria)
	v := p.viewLocked()
	p.mu.Unlock()
	p.publish(v)
	return v
}

// Load fetches the full collection.
func (p *Pipeline) Load(ctx context.Context) error {
	return p.fetch(ctx, modeAll, "")
}

// Retry re-runs the full fetch after an error. Criteria are kept.
func (p *Pipeline) Retry(ctx context.Context) error {
	return p.fetch(ctx, modeAll, "")
}

// SelectState sets the state selection, clears the city and refetches
// scoped to the state, or everything when state is empty.
func (p *Pipeline) SelectState(ctx context.Context, state string) error {
	p.mutate(func(c *Criteria) {
		c.State = state
		c.City = ""
	})
	if state == "" {
		return p.fetch(ctx, modeAll, "")
	}
	return p.fetch(ctx, modeState, state)
}

// SelectCity sets the city selection and refetches scoped to the city, or
// everything when city is empty.
func (p *Pipeline) SelectCity(ctx context.Context, city string) error {
	p.mutate(func(c *Criteria) { c.City = city })
	if city == "" {
		return p.fetch(ctx, modeAll, "")
	}
	return p.fetch(ctx, modeCity, city)
}

// SetSearchTerm re-filters the loaded set; nothing is fetched.
func (p *Pipeline) SetSearchTerm(term string) View {
	return p.mutate(func(c *Criteria) { c.SearchTerm = term })
}

// SetPincode re-filters the loaded set; nothing is fetched.
func (p *Pipeline) SetPincode(pincode string) View {
	return p.mutate(func(c *Criteria) { c.Pincode = pincode })
}

// Clear resets every criterion and fetches the full collection.
func (p *Pipeline) Clear(ctx context.Context) error {
	p.mutate(func(c *Criteria) { *c = Criteria{} })
	return p.fetch(ctx, modeAll, "")
}

// Detail fetches a single customer. It does not change the view.
func (p *Pipeline) Detail(ctx context.Context, id string) (*models.Customer, error) {
	authz, ok := p.auth.Authorization()
	if !ok {
		return nil, common.ErrAuthRequired
	}
	c, err := p.fetcher.Get(ctx, authz, id)
	if err != nil {
		p.log.Warn(ctx, "fetch customer", "id", id, "error", err)
		return nil, fetchError(err, MsgFetchDetail)
	}
	return c, nil
}

func (p *Pipeline) fetch(ctx context.Context, m mode, value string) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen

	authz, ok := p.auth.Authorization()
	if !ok {
		// the working set belonged to the previous session
		p.loaded = []models.Customer{}
		p.loading = false
		p.err = common.ErrAuthRequired
		v := p.viewLocked()
		p.mu.Unlock()
		p.publish(v)
		return common.ErrAuthRequired
	}

	p.loading = true
	p.err = nil
	v := p.viewLocked()
	p.mu.Unlock()
	p.publish(v)

	var (
		list     []models.Customer
		err      error
		fallback string
	)
	switch m {
	case modeState:
		list, err = p.fetcher.ListByState(ctx, authz, value)
		fallback = MsgFetchByState
	case modeCity:
		list, err = p.fetcher.ListByCity(ctx, authz, value)
		fallback = MsgFetchByCity
	default:
		list, err = p.fetcher.List(ctx, authz)
		fallback = MsgFetchAll
	}

	p.mu.Lock()
	if gen != p.gen {
		// superseded by a newer fetch
		p.mu.Unlock()
		p.log.Debug(ctx, "discarding stale result", "generation", gen)
		return nil
	}
	p.loading = false
	var ferr error
	if err != nil {
		ferr = fetchError(err, fallback)
		p.err = ferr
	} else {
		if list == nil {
			list = []models.Customer{}
		}
		p.loaded = list
	}
	v = p.viewLocked()
	p.mu.Unlock()
	p.publish(v)

	if ferr != nil {
		p.log.Warn(ctx, "fetch customers", "error", err)
	}
	return ferr
}
