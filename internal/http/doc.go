// Package http contains the Gin handlers for the decikit REST surface:
// service listing, discovery, and tool execution.
package http
