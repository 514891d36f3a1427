// Package account implements the login form and the two-step registration
// on top of the form controller.
//
// Registration step one collects name, CPF, phone, email and password and
// saves them to the Flow's Handoff. Step two reads them back, shows email
// and password prefilled, collects person type and world, and submits the
// merged User to a Registrar. A missing or unreadable handoff is reported as
// ErrHandoffMissing or ErrHandoffCorrupt; callers route back to step one.
//
// Simulated implements both Authenticator and Registrar with configurable
// delays until a real backend exists.
package account
