// Package prompt drives the account forms from plain line prompts, for
// terminals where the full-screen UI is unwanted.
package prompt
