// Package tui implements the full-screen interactive application using
// Bubble Tea.
//
// AppModel owns a routes.History and one model per screen. Screens never
// switch routes themselves; they emit navigation messages (navigate, goBack,
// loggedInMsg and friends) that AppModel turns into history changes. Screens
// are rebuilt on every visit, so form state that must outlive a screen is kept
// in account.Flow.
//
// Form screens share formView, which binds bubbles textinputs to a
// form.Controller. Edits go through HandleFieldChange, masks are applied on
// blur, and Submit runs as a command so the spinner keeps ticking.
package tui
