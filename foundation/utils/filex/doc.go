// File: doc.go
// Title: Package Documentation for filex
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12

// Package filex provides file system helpers that extend the standard
// library with the small conveniences the rest of the codebase needs,
// such as existence checks and writes that create missing parent
// directories.
package filex
