// Package providers contains the service implementations registered with
// the service registry: exact-decimal array containers and the math
// service modules built on the same decimal core.
package providers
