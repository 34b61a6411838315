// SPDX-License-Identifier: GPL-3.0-or-later

// Package wire implements the EPP length-prefixed framing (RFC 5730 §4)
// and the XML envelope and extension schemas carried inside each frame.
//
// Every frame on the wire is a 4-byte big-endian total length (including
// the 4 length bytes themselves) followed by exactly that many bytes of
// UTF-8 XML. FrameConn wraps a [net.Conn] with ReadFrame/WriteFrame; the
// rest of the package marshals and unmarshals the XML payloads.
package wire

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"time"
)

// MinFrameSize is the smallest legal total frame length: 4 header bytes
// plus at least one payload byte.
const MinFrameSize = 5

// DefaultMaxFrameSize is the frame size ceiling applied when a
// [FrameConn] is constructed without an explicit override. EPP payloads
// are typically a few KiB; 16 MiB leaves ample room for bulk contact/host
// check responses while still bounding a single read.
const DefaultMaxFrameSize = 16 * 1024 * 1024

// ErrFrameTooLarge is returned by ReadFrame when the declared length
// exceeds the configured ceiling.
var ErrFrameTooLarge = errors.New("wire: frame exceeds maximum size")

// ErrFrameTooSmall is returned by ReadFrame when the declared total
// length is too small to hold the header and any payload.
var ErrFrameTooSmall = errors.New("wire: frame length below minimum")

// FrameConn wraps a [net.Conn] with EPP's length-prefixed frame
// read/write operations.
type FrameConn struct {
	conn     net.Conn
	maxFrame int
}

// NewFrameConn wraps conn. maxFrame bounds the total frame length accepted
// by ReadFrame; a value <= 0 selects [DefaultMaxFrameSize]. The minimum
// enforced ceiling is 1 MiB regardless of maxFrame, per the framing
// invariant that a conforming server's greeting and largest responses
// always fit comfortably under that floor.
func NewFrameConn(conn net.Conn, maxFrame int) *FrameConn {
	const floor = 1 * 1024 * 1024
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrameSize
	}
	if maxFrame < floor {
		maxFrame = floor
	}
	return &FrameConn{conn: conn, maxFrame: maxFrame}
}

// Conn returns the underlying [net.Conn].
func (f *FrameConn) Conn() net.Conn {
	return f.conn
}

// Close closes the underlying connection.
func (f *FrameConn) Close() error {
	return f.conn.Close()
}

// ReadFrame reads one length-prefixed frame and returns its payload (the
// bytes after the 4-byte length header). ctx's deadline, if any, is
// applied to the underlying connection for the duration of the read.
func (f *FrameConn) ReadFrame(ctx context.Context) ([]byte, error) {
	if err := applyDeadline(ctx, f.conn); err != nil {
		return nil, err
	}
	defer f.conn.SetReadDeadline(noDeadline)

	var header [4]byte
	if _, err := io.ReadFull(f.conn, header[:]); err != nil {
		return nil, fmt.Errorf("wire: reading frame header: %w", err)
	}
	total := binary.BigEndian.Uint32(header[:])
	if total < MinFrameSize {
		return nil, ErrFrameTooSmall
	}
	if int(total) > f.maxFrame {
		return nil, ErrFrameTooLarge
	}

	payload := make([]byte, total-4)
	if _, err := io.ReadFull(f.conn, payload); err != nil {
		return nil, fmt.Errorf("wire: reading frame payload: %w", err)
	}
	return payload, nil
}

// WriteFrame writes payload as one length-prefixed frame.
func (f *FrameConn) WriteFrame(ctx context.Context, payload []byte) error {
	if err := applyDeadline(ctx, f.conn); err != nil {
		return err
	}
	defer f.conn.SetWriteDeadline(noDeadline)

	total := uint32(len(payload) + 4)
	if total > uint32(f.maxFrame) {
		return ErrFrameTooLarge
	}

	buf := make([]byte, 4, total)
	binary.BigEndian.PutUint32(buf, total)
	buf = append(buf, payload...)

	_, err := f.conn.Write(buf)
	if err != nil {
		return fmt.Errorf("wire: writing frame: %w", err)
	}
	return nil
}

// noDeadline is the zero [time.Time], which clears a previously set
// read or write deadline on a [net.Conn].
var noDeadline time.Time

func applyDeadline(ctx context.Context, conn net.Conn) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		return nil
	}
	return conn.SetDeadline(deadline)
}
