// Package api exposes the sync over HTTP: a health probe and a basic-auth
// protected trigger that runs one sync and reports its Result. Response
// helpers live in api/shared and request middleware in api/middleware.
package api
