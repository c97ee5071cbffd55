//go:build !unix

package terminal

// readAvailable has no non-blocking primitive off unix; input is disabled
func readAvailable(fd int, buf []byte) (int, error) {
	return 0, nil
}
