//go:build !unix

package server

import "syscall"

// SO_REUSEADDR on Windows lets a second socket steal an active port, so it is left unset.
func reuseAddrControl(network, address string, c syscall.RawConn) error {
	return nil
}
