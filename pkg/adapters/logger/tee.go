package logger

import "github.com/user/filemanager/pkg/ports"

// Tee fans every message out to several loggers.
type Tee []ports.Logger

// NewTee returns a logger writing to all of loggers.
func NewTee(loggers ...ports.Logger) Tee {
	return Tee(loggers)
}

func (t Tee) Debug(msg string, args ...interface{}) {
	for _, l := range t {
		l.Debug(msg, args...)
	}
}

func (t Tee) Info(msg string, args ...interface{}) {
	for _, l := range t {
		l.Info(msg, args...)
	}
}

func (t Tee) Warn(msg string, args ...interface{}) {
	for _, l := range t {
		l.Warn(msg, args...)
	}
}

func (t Tee) Error(msg string, args ...interface{}) {
	for _, l := range t {
		l.Error(msg, args...)
	}
}

// WithComponent applies the component to every member.
func (t Tee) WithComponent(component string) ports.Logger {
	out := make(Tee, len(t))
	for i, l := range t {
		out[i] = l.WithComponent(component)
	}
	return out
}
