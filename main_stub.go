//go:build !cgo

package main

import "log"

func main() {
	log.Fatal("Blake3Stream exports a C ABI and must be built with cgo and -buildmode=c-shared")
}
