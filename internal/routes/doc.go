// Package routes provides centralized constants for every screen path used
// throughout the application, plus the navigation history behind the back
// button.
//
// All paths are defined here as exported constants so screens never hard-code
// them.
//
// Usage:
//
//	import "github.com/infohub/infohub/internal/routes"
//
//	history := routes.NewHistory(routes.Home)
//	history.Push(routes.Register)
//	history.Back() // routes.Home
package routes
