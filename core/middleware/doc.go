// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - NoCache: Injects Cache-Control, Pragma and Expires headers on every
//     response, including error responses, so browsers always refetch.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request
//     and stores it in the context for log correlation.
//   - Serial: Serialises request handling so only one request is in flight.
//
// These middleware components are registered globally in the application setup,
// in the order RayID, Serial, NoCache.
package middleware
