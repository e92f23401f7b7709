// Package config loads and validates quill.json, the project
// configuration consumed by the quill CLI.
package config
