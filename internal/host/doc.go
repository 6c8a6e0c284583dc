// Package host models the Local desktop application this CLI generates
// add-ons for: its variants (Local and Local Beta), where each variant keeps
// its data, which add-ons already exist, and how an add-on is marked enabled.
package host
