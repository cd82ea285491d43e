// Package overlay implements the page handlers: opening and closing the
// navigation overlay, and swapping the query-filter style.
//
// Handlers write straight to the DOM and keep no state of their own. This
// package has no build tags; it runs against dom.Browser() in the page
// and against a vdom.Document in tests.
package overlay

import (
	"errors"
	"fmt"

	"github.com/vcrobe/nlqnav/console"
	"github.com/vcrobe/nlqnav/dom"
)

// ErrElementNotFound is returned when the markup lacks an element the
// handler writes to.
var ErrElementNotFound = errors.New("element not found")

// Names under which Handlers exports the operations.
const (
	HandlerOpenNav       = "openNav"
	HandlerCloseNav      = "closeNav"
	HandlerToggleFilters = "toggleFilters"
)

// ErrorReporter receives faults raised by an exported handler.
type ErrorReporter func(handler string, err error)

// Controller binds the handlers to a document.
type Controller struct {
	doc    dom.Document
	cfg    Config
	report ErrorReporter
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

// WithErrorReporter replaces the default reporter, which writes to the
// browser console.
func WithErrorReporter(report ErrorReporter) Option {
	return func(c *Controller) {
		if report != nil {
			c.report = report
		}
	}
}

// New creates a Controller for doc.
func New(doc dom.Document, opts ...Option) *Controller {
	c := &Controller{
		doc:    doc,
		cfg:    DefaultConfig(),
		report: reportToConsole,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the markup contract in use.
func (c *Controller) Config() Config {
	return c.cfg
}

// OpenNav sets the overlay to its fully visible width. Repeated calls
// leave it open.
func (c *Controller) OpenNav() error {
	return c.setOverlayWidth(c.cfg.OpenWidth)
}

// CloseNav collapses the overlay.
func (c *Controller) CloseNav() error {
	return c.setOverlayWidth(c.cfg.ClosedWidth)
}

func (c *Controller) setOverlayWidth(width string) error {
	nav := c.doc.GetElementByID(c.cfg.OverlayID)
	if nav == nil {
		return fmt.Errorf("%w: #%s", ErrElementNotFound, c.cfg.OverlayID)
	}
	nav.SetStyle("width", width)
	return nil
}

// ToggleFilters flips the NLQ and default classes on the filter element,
// each independently of the other. Two calls restore the original state.
// The one-class-present invariant is assumed, not checked: an element
// carrying both classes or neither keeps carrying both or neither.
func (c *Controller) ToggleFilters() error {
	filter := c.doc.QuerySelector(c.cfg.FilterSelector)
	if filter == nil {
		return fmt.Errorf("%w: %s", ErrElementNotFound, c.cfg.FilterSelector)
	}
	filter.ToggleClass(c.cfg.NLQClass)
	filter.ToggleClass(c.cfg.DefaultClass)
	return nil
}

// Handlers returns the operations keyed by the global name markup calls
// them by. Each handler reports its error instead of returning it.
func (c *Controller) Handlers() map[string]func() {
	return map[string]func(){
		HandlerOpenNav:       c.handle(HandlerOpenNav, c.OpenNav),
		HandlerCloseNav:      c.handle(HandlerCloseNav, c.CloseNav),
		HandlerToggleFilters: c.handle(HandlerToggleFilters, c.ToggleFilters),
	}
}

func (c *Controller) handle(name string, op func() error) func() {
	return func() {
		if err := op(); err != nil {
			c.report(name, err)
		}
	}
}

func reportToConsole(handler string, err error) {
	console.Error(handler+":", err.Error())
}
