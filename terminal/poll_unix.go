//go:build unix

package terminal

import "golang.org/x/sys/unix"

// readAvailable reads whatever input is pending on fd without blocking.
// Returns 0 when nothing is ready
func readAvailable(fd int, buf []byte) (int, error) {
	fds := []unix.PollFd{
		{Fd: int32(fd), Events: unix.POLLIN},
	}

	// Zero timeout: poll returns immediately
	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return 0, nil
		}
		return 0, err
	}
	if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		return 0, nil
	}

	rn, err := unix.Read(fd, buf)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, nil
		}
		return 0, err
	}
	return rn, nil
}
