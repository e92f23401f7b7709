package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Frame constants.
const (
	// frameHeaderSize is the size of the outer length prefix in bytes.
	frameHeaderSize = 4

	// idHeaderSize is the size of the template-ID length prefix.
	idHeaderSize = 2

	// MaxFrameSize caps a request frame so a corrupt length prefix
	// cannot force an arbitrary allocation.
	MaxFrameSize = 64 << 20

	// MaxTemplateIDSize is the maximum encoded template ID length.
	MaxTemplateIDSize = 1<<16 - 1
)

// Frame errors.
var (
	// ErrTruncatedRequest reports a stream that ended before the frame
	// it declared was fully read.
	ErrTruncatedRequest = errors.New("protocol: truncated request frame")

	// ErrFrameTooLarge reports a frame exceeding MaxFrameSize.
	ErrFrameTooLarge = errors.New("protocol: request frame too large")

	// ErrInvalidFrame reports a structurally malformed frame.
	ErrInvalidFrame = errors.New("protocol: malformed request frame")
)

// Request is the single message a parent ships to a render child.
// The payload bytes use an application-chosen self-describing encoding
// (JSON in practice); the protocol does not interpret them.
//
// Wire format, all integers big-endian:
//
//	┌──────────────────┬──────────────┬──────────────┬─────────────┐
//	│ Frame Length     │ ID Length    │ Template ID  │ Payload     │
//	│ (4 bytes)        │ (2 bytes)    │ (UTF-8)      │ (opaque)    │
//	└──────────────────┴──────────────┴──────────────┴─────────────┘
//
// Frame Length covers everything after the 4-byte prefix, so a child
// can read exactly one request without over-reading its input.
type Request struct {
	TemplateID string
	Payload    []byte
}

// Encode encodes the request to bytes including the length prefix.
func (r *Request) Encode() ([]byte, error) {
	if len(r.TemplateID) > MaxTemplateIDSize {
		return nil, fmt.Errorf("%w: template id is %d bytes", ErrInvalidFrame, len(r.TemplateID))
	}
	body := idHeaderSize + len(r.TemplateID) + len(r.Payload)
	if body > MaxFrameSize {
		return nil, ErrFrameTooLarge
	}

	buf := make([]byte, frameHeaderSize+body)
	binary.BigEndian.PutUint32(buf[0:], uint32(body))
	binary.BigEndian.PutUint16(buf[frameHeaderSize:], uint16(len(r.TemplateID)))
	copy(buf[frameHeaderSize+idHeaderSize:], r.TemplateID)
	copy(buf[frameHeaderSize+idHeaderSize+len(r.TemplateID):], r.Payload)
	return buf, nil
}

// WriteRequest writes one complete request frame to w.
func WriteRequest(w io.Writer, r *Request) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadRequest reads exactly one request frame from r. A stream that
// ends mid-frame yields ErrTruncatedRequest; the reader never blocks
// waiting for more input than the frame declares.
func ReadRequest(r io.Reader) (*Request, error) {
	header := make([]byte, frameHeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, truncated(err)
	}

	length := int(binary.BigEndian.Uint32(header))
	if length > MaxFrameSize {
		return nil, ErrFrameTooLarge
	}
	if length < idHeaderSize {
		return nil, fmt.Errorf("%w: frame length %d", ErrInvalidFrame, length)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, truncated(err)
	}

	idLen := int(binary.BigEndian.Uint16(body))
	if idHeaderSize+idLen > length {
		return nil, fmt.Errorf("%w: id length %d exceeds frame", ErrInvalidFrame, idLen)
	}

	id := string(body[idHeaderSize : idHeaderSize+idLen])
	if !utf8.ValidString(id) {
		return nil, fmt.Errorf("%w: template id is not valid UTF-8", ErrInvalidFrame)
	}

	return &Request{
		TemplateID: id,
		Payload:    body[idHeaderSize+idLen:],
	}, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrTruncatedRequest, err)
	}
	return err
}
