package storefront

import (
	"github.com/themestore/themestore/internal/catalog"
)

// ChangeKind identifies a storefront transition.
type ChangeKind string

const (
	ChangeCategory   ChangeKind = "category"
	ChangeSearch     ChangeKind = "search"
	ChangeCartAdd    ChangeKind = "cart_add"
	ChangeCartRemove ChangeKind = "cart_remove"
	ChangeCheckout   ChangeKind = "checkout"
)

// Change describes a transition after it has been applied.
type Change struct {
	Kind      ChangeKind
	Category  string
	Query     string
	ThemeID   int
	CartCount int
	CartTotal int
}

// Observer is notified after every applied transition.
type Observer interface {
	OnChange(Change)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Change)

// OnChange implements Observer.
func (f ObserverFunc) OnChange(change Change) { f(change) }

// Option configures a State.
type Option func(*State)

// WithObserver registers an observer for applied transitions.
func WithObserver(observer Observer) Option {
	return func(s *State) {
		s.observer = observer
	}
}

// State is the storefront session: the catalog it browses, the selected
// category, the search query and the cart. Derived views are recomputed
// on every read and never cached.
//
// State is owned by a single session and is not safe for concurrent use.
type State struct {
	themes   []catalog.Theme
	category string
	query    string
	cart     *Cart
	observer Observer
}

// New creates a session over themes with default filters and an empty cart.
func New(themes []catalog.Theme, opts ...Option) *State {
	s := &State{
		themes:   append([]catalog.Theme(nil), themes...),
		category: catalog.AllCategories,
		cart:     NewCart(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDefault creates a session over the built-in catalog.
func NewDefault(opts ...Option) *State {
	return New(catalog.Themes(), opts...)
}

// Themes returns the full catalog this session browses.
func (s *State) Themes() []catalog.Theme {
	return append([]catalog.Theme(nil), s.themes...)
}

// SelectedCategory returns the active category label.
func (s *State) SelectedCategory() string { return s.category }

// SearchQuery returns the active search text.
func (s *State) SearchQuery() string { return s.query }

// SetCategory selects a category label. Labels outside catalog.Categories
// are ignored and SetCategory reports false.
func (s *State) SetCategory(category string) bool {
	if !catalog.IsCategory(category) {
		return false
	}
	s.category = category
	s.notify(Change{Kind: ChangeCategory})
	return true
}

// SetSearch replaces the search query.
func (s *State) SetSearch(query string) {
	if query == s.query {
		return
	}
	s.query = query
	s.notify(Change{Kind: ChangeSearch})
}

// ToggleCart removes id from the cart if present and adds it otherwise.
// It reports whether id is in the cart afterwards.
func (s *State) ToggleCart(id int) bool {
	if s.cart.Contains(id) {
		s.cart.Remove(id)
		s.notify(Change{Kind: ChangeCartRemove, ThemeID: id})
		return false
	}
	s.cart.Add(id)
	s.notify(Change{Kind: ChangeCartAdd, ThemeID: id})
	return true
}

// AddToCart adds id to the cart; it is a no-op when id is already present.
func (s *State) AddToCart(id int) {
	if s.cart.Add(id) {
		s.notify(Change{Kind: ChangeCartAdd, ThemeID: id})
	}
}

// RemoveFromCart removes id from the cart; it is a no-op when id is absent.
func (s *State) RemoveFromCart(id int) {
	if s.cart.Remove(id) {
		s.notify(Change{Kind: ChangeCartRemove, ThemeID: id})
	}
}

// Checkout is a placeholder affordance. It changes nothing; observers are
// told it was requested.
func (s *State) Checkout() {
	s.notify(Change{Kind: ChangeCheckout})
}

// InCart reports whether id is in the cart.
func (s *State) InCart(id int) bool { return s.cart.Contains(id) }

// CartIDs returns cart ids in insertion order.
func (s *State) CartIDs() []int { return s.cart.IDs() }

// CartCount returns the number of themes in the cart.
func (s *State) CartCount() int { return s.cart.Len() }

// CartTotal returns the summed price of the cart.
func (s *State) CartTotal() int { return ComputeTotal(s.cart.IDs(), s.themes) }

// CartItems returns the catalog entries for the cart, in insertion order.
// Ids missing from the catalog are skipped.
func (s *State) CartItems() []catalog.Theme {
	byID := make(map[int]catalog.Theme, len(s.themes))
	for _, theme := range s.themes {
		byID[theme.ID] = theme
	}

	ids := s.cart.IDs()
	out := make([]catalog.Theme, 0, len(ids))
	for _, id := range ids {
		if theme, ok := byID[id]; ok {
			out = append(out, theme)
		}
	}
	return out
}

// FilteredThemes returns the catalog filtered by the current category and query.
func (s *State) FilteredThemes() []catalog.Theme {
	return FilterThemes(s.themes, s.category, s.query)
}

// IsEmptyResult reports whether the current filters match nothing.
func (s *State) IsEmptyResult() bool {
	return len(s.FilteredThemes()) == 0
}

func (s *State) notify(change Change) {
	if s.observer == nil {
		return
	}
	change.Category = s.category
	change.Query = s.query
	change.CartCount = s.cart.Len()
	change.CartTotal = s.CartTotal()
	s.observer.OnChange(change)
}
