package gallery

import "strconv"

// Slide is the outcome of one carousel navigation.
type Slide struct {
	ProjectID int
	Index     int
	Photo     string
}

// Element returns the DOM id the slide applies to.
func (s Slide) Element() string {
	return ElementID(s.ProjectID)
}

// ElementID returns the DOM id used for the card of project id.
func ElementID(id int) string {
	return "article-" + strconv.Itoa(id)
}

// Next returns the index after current in a carousel of n photos.
//
// n == 0 panics with an integer divide by zero; empty photo lists are not
// supported.
func Next(current, n int) int {
	return (current + 1) % n
}

// Prev returns the index before current in a carousel of n photos, wrapping
// from 0 to n-1. See Next for n == 0.
func Prev(current, n int) int {
	return (current - 1 + n) % n
}

// Carousel maps project ids to the index of the photo on display. The zero
// value is not usable; call NewCarousel.
type Carousel struct {
	index map[int]int
}

// NewCarousel returns an empty carousel where every project shows photo 0.
func NewCarousel() *Carousel {
	return &Carousel{index: map[int]int{}}
}

// Index returns the current index for id, 0 when never navigated.
func (c *Carousel) Index(id int) int {
	return c.index[id]
}

// Len returns the number of projects with navigation state.
func (c *Carousel) Len() int {
	return len(c.index)
}

// Advance moves project id to its next photo. Unknown ids leave the carousel
// unchanged and report false.
func (c *Carousel) Advance(projects []Project, id int) (Slide, bool) {
	return c.step(projects, id, Next)
}

// Retreat moves project id to its previous photo. Unknown ids leave the
// carousel unchanged and report false.
func (c *Carousel) Retreat(projects []Project, id int) (Slide, bool) {
	return c.step(projects, id, Prev)
}

func (c *Carousel) step(projects []Project, id int, move func(current, n int) int) (Slide, bool) {
	project, ok := Find(projects, id)
	if !ok {
		return Slide{}, false
	}
	current := c.index[id]
	next := move(current, len(project.Photos))
	c.index[id] = next
	return Slide{ProjectID: id, Index: next, Photo: project.Photos[next]}, true
}
