package pool

import (
	"io"
	"strconv"
	"sync"
)

const (
	TokenBufferDefaultSize  = 32   // a byte plus a 20-digit count, with headroom
	TokenBufferMaxThreshold = 1024 // buffers grown past this are dropped
)

// ByteBuffer is a reusable append buffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but retains the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// AppendByte appends a single byte.
func (bb *ByteBuffer) AppendByte(c byte) {
	bb.B = append(bb.B, c)
}

// AppendUint appends the decimal form of n, without leading zeros.
func (bb *ByteBuffer) AppendUint(n uint64) {
	bb.B = strconv.AppendUint(bb.B, n, 10)
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w in a single Write call.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	if err == nil && n < len(bb.B) {
		err = io.ErrShortWrite
	}

	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity exceeds maxThreshold are not returned to the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var tokenDefaultPool = NewByteBufferPool(TokenBufferDefaultSize, TokenBufferMaxThreshold)

// GetTokenBuffer retrieves a ByteBuffer from the default token pool.
func GetTokenBuffer() *ByteBuffer {
	return tokenDefaultPool.Get()
}

// PutTokenBuffer returns a ByteBuffer to the default token pool.
func PutTokenBuffer(bb *ByteBuffer) {
	tokenDefaultPool.Put(bb)
}
