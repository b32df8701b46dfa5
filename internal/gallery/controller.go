package gallery

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Session bounds applied when no option overrides them.
const (
	DefaultSessionLimit = 4096
	DefaultSessionTTL   = 30 * time.Minute
)

// Option configures a Controller.
type Option func(*controllerOptions)

type controllerOptions struct {
	sessionLimit int
	sessionTTL   time.Duration
}

// WithSessionLimits caps how many gallery sessions keep carousel state and
// how long an idle session is kept. Non-positive values keep the defaults.
func WithSessionLimits(limit int, ttl time.Duration) Option {
	return func(o *controllerOptions) {
		if limit > 0 {
			o.sessionLimit = limit
		}
		if ttl > 0 {
			o.sessionTTL = ttl
		}
	}
}

// Controller owns the loaded projects and the carousel of every gallery
// session. Sessions beyond the limit evict the least recently used one.
type Controller struct {
	mu        sync.RWMutex
	projects  []Project
	carousels *expirable.LRU[string, *Carousel]
}

// NewController returns a controller holding projects.
func NewController(projects []Project, opts ...Option) *Controller {
	o := controllerOptions{sessionLimit: DefaultSessionLimit, sessionTTL: DefaultSessionTTL}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Controller{
		projects:  cloneProjects(projects),
		carousels: expirable.NewLRU[string, *Carousel](o.sessionLimit, nil, o.sessionTTL),
	}
}

// Replace swaps the loaded projects and drops every session carousel.
func (c *Controller) Replace(projects []Project) {
	cloned := cloneProjects(projects)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projects = cloned
	c.carousels.Purge()
}

// Projects returns a copy of the loaded projects.
func (c *Controller) Projects() []Project {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneProjects(c.projects)
}

// Render returns the projects visible for category.
func (c *Controller) Render(category string) []Project {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Filter(c.projects, category)
}

// Categories returns the distinct categories of the loaded projects.
func (c *Controller) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Categories(c.projects)
}

// Reset starts session over with every project on its first photo.
func (c *Controller) Reset(session string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.carousels.Remove(session)
}

// Index returns the photo index session currently shows for project id.
func (c *Controller) Index(session string, id int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	carousel, ok := c.carousels.Peek(session)
	if !ok {
		return 0
	}
	return carousel.Index(id)
}

// Sessions returns the number of sessions with carousel state.
func (c *Controller) Sessions() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.carousels.Len()
}

// Advance moves project id to its next photo for session. An empty session
// navigates from the first photo and keeps no state.
func (c *Controller) Advance(session string, id int) (Slide, bool) {
	return c.step(session, id, (*Carousel).Advance)
}

// Retreat moves project id to its previous photo for session. An empty
// session navigates from the first photo and keeps no state.
func (c *Controller) Retreat(session string, id int) (Slide, bool) {
	return c.step(session, id, (*Carousel).Retreat)
}

func (c *Controller) step(session string, id int, move func(*Carousel, []Project, int) (Slide, bool)) (Slide, bool) {
	if session == "" {
		c.mu.RLock()
		defer c.mu.RUnlock()
		return move(NewCarousel(), c.projects, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := Find(c.projects, id); !ok {
		return Slide{}, false
	}
	carousel, ok := c.carousels.Get(session)
	if !ok {
		carousel = NewCarousel()
	}
	slide, ok := move(carousel, c.projects, id)
	// Add also renews the session's expiry.
	c.carousels.Add(session, carousel)
	return slide, ok
}

func cloneProjects(projects []Project) []Project {
	if projects == nil {
		return nil
	}
	out := make([]Project, len(projects))
	copy(out, projects)
	return out
}
