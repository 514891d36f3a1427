package routes

import "github.com/infohub/infohub/internal/logging"

// History is a navigation stack. The bottom entry is never popped.
type History struct {
	stack []Route
}

// NewHistory starts a history at root.
func NewHistory(root Route) *History {
	return &History{stack: []Route{root}}
}

// Current returns the route on top of the stack.
func (h *History) Current() Route {
	return h.stack[len(h.stack)-1]
}

// Push navigates to r. Pushing the current route is a no-op.
func (h *History) Push(r Route) {
	from := h.Current()
	if from == r {
		return
	}
	h.stack = append(h.stack, r)
	logging.LogNavigation(string(from), string(r))
}

// Replace swaps the current route for r without growing the stack. Used for
// redirects, so Back skips the screen that redirected.
func (h *History) Replace(r Route) {
	from := h.Current()
	h.stack[len(h.stack)-1] = r
	logging.LogNavigation(string(from), string(r))
}

// Back pops the current route and returns the new current one. At the root it
// stays put and returns false.
func (h *History) Back() (Route, bool) {
	if len(h.stack) == 1 {
		return h.Current(), false
	}
	from := h.Current()
	h.stack = h.stack[:len(h.stack)-1]
	logging.LogNavigation(string(from), string(h.Current()))
	return h.Current(), true
}

// Reset clears the stack down to r.
func (h *History) Reset(r Route) {
	from := h.Current()
	h.stack = []Route{r}
	logging.LogNavigation(string(from), string(r))
}

// Len returns the depth of the stack.
func (h *History) Len() int {
	return len(h.stack)
}
