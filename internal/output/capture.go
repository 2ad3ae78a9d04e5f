package output

import (
	"bytes"
	"strings"
)

// CaptureBuffer collects printer output in memory.
type CaptureBuffer struct {
	buf bytes.Buffer
}

// NewCaptureBuffer creates a new capture buffer.
func NewCaptureBuffer() *CaptureBuffer {
	return &CaptureBuffer{}
}

// Write implements io.Writer for capturing output.
func (c *CaptureBuffer) Write(p []byte) (n int, err error) {
	return c.buf.Write(p)
}

// String returns the captured output as a string.
func (c *CaptureBuffer) String() string {
	return c.buf.String()
}

// Lines returns the captured output split into lines.
// A trailing newline does not produce an empty final line.
func (c *CaptureBuffer) Lines() []string {
	content := c.String()
	if content == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
