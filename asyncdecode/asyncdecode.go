// Package asyncdecode adapts mqtt.Decode to a non-blocking byte source,
// coordinating the poll loop and caller-driven cancellation with
// golang.org/x/sync/errgroup the way a long-lived connection loop would.
package asyncdecode

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	mqtt "github.com/mqttwire/codec"
)

// ByteSource is a non-blocking byte source. Unlike io.Reader, a single Read
// call must return immediately: (0, nil) means no data is available yet,
// not EOF. A connection wrapped around a non-blocking socket, or a ring
// buffer fed by a separate I/O goroutine, both satisfy this.
type ByteSource interface {
	Read(p []byte) (n int, err error)
}

// Stream decodes a sequence of control packets off a ByteSource, retrying
// the underlying Decode call as more bytes arrive instead of blocking on
// the source directly.
type Stream struct {
	source  ByteSource
	version mqtt.Version
	opts    mqtt.DecodeOptions

	buf       []byte
	pollEvery time.Duration
	logger    *slog.Logger
}

// NewStream builds a Stream reading version-framed packets from source.
// pollEvery controls how often Read is retried when it reports no data;
// a non-positive value falls back to 1ms. The logger defaults to one that
// discards all output; use WithLogger to observe NeedMore retries and
// decode errors.
func NewStream(source ByteSource, version mqtt.Version, opts mqtt.DecodeOptions, pollEvery time.Duration) *Stream {
	if pollEvery <= 0 {
		pollEvery = time.Millisecond
	}
	return &Stream{
		source:    source,
		version:   version,
		opts:      opts,
		pollEvery: pollEvery,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger Stream uses for NeedMore and decode-error
// events. If not called, Stream logs nothing.
func (s *Stream) WithLogger(logger *slog.Logger) *Stream {
	s.logger = logger
	return s
}

// Run decodes packets until ctx is canceled or the source returns an error,
// sending each decoded packet to out. It blocks until one of:
//   - ctx is canceled, in which case it returns ctx.Err()
//   - the source's Read returns a non-nil error, which is returned as-is
//   - a Decode call returns a non-retryable error (*mqtt.DecodeError), which
//     is returned as-is
//
// Run owns two goroutines coordinated with errgroup.WithContext: one runs
// the read-decode-send loop, the other watches ctx so a blocked send on out
// doesn't wedge cancellation.
func (s *Stream) Run(ctx context.Context, out chan<- mqtt.Packet) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return s.pump(ctx, out)
	})
	group.Go(func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	return group.Wait()
}

func (s *Stream) pump(ctx context.Context, out chan<- mqtt.Packet) error {
	chunk := make([]byte, 4096)
	ticker := time.NewTicker(s.pollEvery)
	defer ticker.Stop()

	for {
		pkt, consumed, err := mqtt.Decode(s.version, s.buf, s.opts)
		switch {
		case err == nil:
			s.logger.Debug("decoded packet", "type", mqtt.PacketNames[pkt.Type()], "bytes", consumed)
			s.buf = s.buf[consumed:]
			select {
			case out <- pkt:
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		case !mqtt.IsNeedMore(err):
			if de := mqtt.AsDecodeError(err); de != nil {
				s.logger.Error("decode failed", "kind", de.Kind, "offset", de.Offset, "error", err)
			}
			return err
		default:
			s.logger.Debug("need more bytes", "buffered", len(s.buf), "error", err)
		}

		n, rerr := s.source.Read(chunk)
		if n > 0 {
			s.buf = append(s.buf, chunk[:n]...)
			continue
		}
		if rerr != nil {
			return rerr
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
