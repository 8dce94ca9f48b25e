// Package domain contains the core business types for tutor-cli:
// content chunks, search results, conversation turns, and the domain
// error taxonomy. It has no dependencies on other packages.
package domain
