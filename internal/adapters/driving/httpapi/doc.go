// Package httpapi exposes the suggest, document and user services over HTTP
// using gin.
//
// Errors are JSON objects with a single "message" field. An owner without a
// title index answers 404 {"message": "User not found"}.
package httpapi
