// Package templates renders the admin HTML with templ components.
// Markup lives in the .templ files; run `templ generate` after editing them.
package templates

//go:generate templ generate

// AppName is shown in page titles.
const AppName = "Station Admin"
