// Package service provides the provider registry for the numeric toolkit.
//
// The registry maintains a catalog of tool providers (array, math) and
// routes "service.tool" IDs to them.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//   - Service discovery with relevance scoring
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(arrayProvider)
//	services := registry.Discover("elementwise add", 5)
//	result, err := registry.Execute(ctx, "array.add", params, callCtx)
package service
