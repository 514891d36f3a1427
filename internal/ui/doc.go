// Package ui provides the presentational components shared by the
// interactive screens and the line-mode commands of infohub.
//
// Components are plain values with a Render method that returns a styled
// string. They hold no behaviour of their own: a Button does not know what
// it triggers and an Input does not edit text. The tui package owns focus,
// key handling and form state; this package only draws.
//
// # Components
//
//   - Button: label with variant (primary, secondary, success, danger),
//     size, disabled and loading states
//   - Input: label, placeholder, icon, required mark and error line
//   - Header: back arrow and page title
//   - Footer: copyright line and links
//   - Layout: header, optional sidebar, content and footer
//   - StepIndicator: progress through a multi-step form
//   - Result: success, failure and warning boxes
//   - Printer: writes components to a writer for non-interactive output
//
// # Logging Integration
//
// Nothing here logs. Logging is controlled with the INFOHUB_LOG_LEVEL
// environment variable and stays silent by default so that the styled
// output is not interleaved with log lines.
package ui
