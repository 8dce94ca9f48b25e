// Package file provides file-based configuration and prompt storage.
// Configuration lives in ~/.tutor/config.toml; prompt templates live
// as editable text files under ~/.tutor/prompts/.
package file
