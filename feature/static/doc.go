// Package static implements the static file serving feature.
//
// Every GET (and HEAD) request is answered from the document root through
// fiber's filesystem.SendFile over an http.Dir, which keeps resolution inside
// the root, serves index.html for directories and infers the content type
// from the file extension.
//
// # Debug Rewrite
//
// A request whose raw target starts with the debug prefix ("/debug/") is
// answered with the root document instead. The rewrite is computed by
// EffectivePath as a separate value; the request keeps its original path,
// so logging and later middleware see what the client asked for.
//
// # Components
//
//   - Handler: Resolves the effective path and sends the file.
//   - Loader: Registers the feature with the application.
package static
