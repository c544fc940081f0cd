// Package observable adds metrics, tracing and logging around any catalog.BookSink
// without touching the wrapped sink.
package observable
