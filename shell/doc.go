// Package shell delivers catalog notifications to the outside world.
//
// It contains the Notifier abstraction with its in-process implementations
// (callback, channel, in-memory recorder, log output, journal), the conversion
// functions between domain events and journal entries, and the observability
// interfaces and helpers shared by the catalog wrappers.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
