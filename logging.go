package main

import (
	"fmt"
	"io"
	"log"
)

// Logger serializes log records from concurrent workers onto one
// destination. Workers hand records to Printf; a single goroutine
// owns the underlying writer, so records never interleave. After
// Close returns, every accepted record has been written.
type Logger struct {
	ch   chan string
	done chan struct{}
}

// NewLogger starts the writer goroutine over w
func NewLogger(w io.Writer) *Logger {
	l := &Logger{
		ch:   make(chan string, 64),
		done: make(chan struct{}),
	}
	go func() {
		out := log.New(w, "", log.LstdFlags)
		for rec := range l.ch {
			out.Print(rec)
		}
		close(l.done)
	}()
	return l
}

// Printf formats a record and queues it for the writer. It must not
// be called after Close.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.ch <- fmt.Sprintf(format, args...)
}

// Close stops the writer once it has drained every pending record
func (l *Logger) Close() {
	close(l.ch)
	<-l.done
}
