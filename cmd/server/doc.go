// Command server runs the decikit HTTP service: exact-decimal array and
// math tools behind a REST API with Prometheus metrics.
package main
