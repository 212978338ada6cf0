// Package clipboard reads paste text from the system clipboard, falling back
// to the tmux paste buffer.
package clipboard

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"

	"github.com/atomicstack/tmux-popup-json/internal/logging/events"
	"github.com/atomicstack/tmux-popup-json/internal/tmux"
)

// Source names where pasted text came from.
type Source string

const (
	SourceNone   Source = ""
	SourceSystem Source = "system"
	SourceTmux   Source = "tmux"
)

// Result is either Success(text) or Unavailable.
type Result struct {
	Text   string
	Source Source
	OK     bool
}

// Success wraps text obtained from source.
func Success(text string, source Source) Result {
	return Result{Text: text, Source: source, OK: true}
}

// Unavailable is the result when no reader produced text.
func Unavailable() Result {
	return Result{}
}

// ErrUnsupported is returned by the system reader on platforms without a
// clipboard utility.
var ErrUnsupported = errors.New("system clipboard unsupported")

// Reader is one way of obtaining paste text.
type Reader interface {
	Source() Source
	Read(ctx context.Context) (string, error)
}

// SystemReader reads the desktop clipboard.
type SystemReader struct{}

func (SystemReader) Source() Source { return SourceSystem }

func (SystemReader) Read(ctx context.Context) (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	type outcome struct {
		text string
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		text, err := clipboard.ReadAll()
		ch <- outcome{text: text, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case out := <-ch:
		return out.text, out.err
	}
}

// TmuxReader reads the most recent tmux paste buffer.
type TmuxReader struct {
	SocketPath string
}

func (TmuxReader) Source() Source { return SourceTmux }

func (r TmuxReader) Read(ctx context.Context) (string, error) {
	return tmux.ShowBuffer(ctx, r.SocketPath, "")
}

// Bridge tries each reader in order and returns the first non-empty text.
type Bridge struct {
	Readers []Reader
}

// NewBridge returns the standard chain: system clipboard, then the tmux
// paste buffer on socketPath.
func NewBridge(socketPath string) *Bridge {
	return &Bridge{Readers: []Reader{SystemReader{}, TmuxReader{SocketPath: socketPath}}}
}

// Read never fails. Reader errors are traced and the next reader is tried.
func (b *Bridge) Read(ctx context.Context) Result {
	if b == nil {
		return Unavailable()
	}
	for _, r := range b.Readers {
		if err := ctx.Err(); err != nil {
			events.Clipboard.Failure(string(r.Source()), err)
			break
		}
		events.Clipboard.Attempt(string(r.Source()))
		text, err := r.Read(ctx)
		if err != nil {
			events.Clipboard.Failure(string(r.Source()), err)
			continue
		}
		if text == "" {
			events.Clipboard.Failure(string(r.Source()), nil)
			continue
		}
		events.Clipboard.Success(string(r.Source()), len(text))
		return Success(text, r.Source())
	}
	events.Clipboard.Unavailable()
	return Unavailable()
}
