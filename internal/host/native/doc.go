// Package native backs host.Binding with the address space of the current
// process. It is only functional on Windows.
package native
