//go:build cgo

// Command Blake3Stream builds as a C shared library:
//
//	go build -buildmode=c-shared -o libblake3stream.so .
//
// Buffers are passed as pointer and length and are only used for the
// duration of a call.
package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"
import (
	"unsafe"

	"Blake3Stream/boundary"
)

func bytesOf(p *C.uint8_t, n C.size_t) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(n))
}

//export blake3_create
func blake3_create() C.uint32_t {
	return C.uint32_t(boundary.Create())
}

//export blake3_write
func blake3_write(h C.uint32_t, src *C.uint8_t, n C.size_t) {
	boundary.Write(boundary.Handle(h), bytesOf(src, n))
}

//export blake3_read_hash_into
func blake3_read_hash_into(h C.uint32_t, dst *C.uint8_t, n C.size_t, offset C.size_t) {
	boundary.ReadHashInto(boundary.Handle(h), bytesOf(dst, n), int(offset))
}

//export blake3_count
func blake3_count(h C.uint32_t) C.uint64_t {
	return C.uint64_t(boundary.Count(boundary.Handle(h)))
}

//export blake3_reset
func blake3_reset(h C.uint32_t) {
	boundary.Reset(boundary.Handle(h))
}

//export blake3_free
func blake3_free(h C.uint32_t) {
	boundary.Free(boundary.Handle(h))
}

//export blake3_hash_into
func blake3_hash_into(src *C.uint8_t, srcLen C.size_t, dst *C.uint8_t, dstLen C.size_t, offset C.size_t) {
	boundary.HashInto(bytesOf(src, srcLen), bytesOf(dst, dstLen), int(offset))
}

func main() {}
