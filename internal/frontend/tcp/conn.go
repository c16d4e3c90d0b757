// Package tcp provides the line-oriented TCP transport for the venture server.
package tcp

import (
	"bufio"
	"bytes"
	"net"
	"sync"
	"time"
)

// Conn wraps a TCP connection with newline-delimited framing. Reads
// accumulate raw bytes until a line terminator arrives; bytes after the
// terminator stay buffered for the next cycle, so pipelined commands are
// preserved rather than dropped.
type Conn struct {
	raw    net.Conn
	reader *bufio.Reader
	mu     sync.Mutex

	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewConn wraps a raw TCP connection with line framing.
//
// Precondition: raw must be a valid, open network connection. A zero
// readTimeout means reads block indefinitely.
// Postcondition: Returns a Conn ready for reading and writing.
func NewConn(raw net.Conn, readTimeout, writeTimeout time.Duration) *Conn {
	return &Conn{
		raw:          raw,
		reader:       bufio.NewReaderSize(raw, 4096),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

// ReadLine blocks until a full line is available and returns it without the
// trailing \n (a preceding \r is also stripped).
//
// Postcondition: Returns the next line of input, or the partial line read so
// far together with an error (including io.EOF on peer closure).
func (c *Conn) ReadLine() (string, error) {
	if c.readTimeout > 0 {
		_ = c.raw.SetReadDeadline(time.Now().Add(c.readTimeout))
	} else {
		_ = c.raw.SetReadDeadline(time.Time{})
	}

	var line bytes.Buffer
	for {
		b, err := c.reader.ReadByte()
		if err != nil {
			return line.String(), err
		}
		if b == '\n' {
			break
		}
		line.WriteByte(b)
	}

	s := line.String()
	if n := len(s); n > 0 && s[n-1] == '\r' {
		s = s[:n-1]
	}
	return s, nil
}

// Write sends raw bytes to the client as a single full send.
//
// Postcondition: All of data is written to the connection, or an error is returned.
func (c *Conn) Write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.writeTimeout > 0 {
		_ = c.raw.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	_, err := c.raw.Write(data)
	return err
}

// WriteString sends a pre-framed string to the client. No newline handling is
// applied; the caller owns the wire framing.
func (c *Conn) WriteString(s string) error {
	return c.Write([]byte(s))
}

// Close closes the underlying TCP connection.
//
// Postcondition: The connection is closed and no longer usable.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// RemoteAddr returns the remote network address of the client.
func (c *Conn) RemoteAddr() net.Addr {
	return c.raw.RemoteAddr()
}
