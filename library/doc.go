// Package library wires the catalog components to one shared notifier.
//
// A Library is either obtained from the process-wide Instance, constructed with New
// for dependency injection, or carried through a context with WithLibrary / FromContext.
package library
