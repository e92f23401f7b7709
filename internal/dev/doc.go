// Package dev implements the quill preview server: registered
// templates served over HTTP through the dynamic render client, with
// file watching and WebSocket-driven browser reload.
package dev
