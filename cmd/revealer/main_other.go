//go:build !windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "revealer runs only inside the Windows game client; use revealsim instead")
	os.Exit(1)
}
