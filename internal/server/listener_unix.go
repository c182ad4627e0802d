//go:build linux || darwin

package server

import (
	"errors"
	"net"
	"os"
	"strconv"
)

// GetListener returns a TCP listener on addr, or the socket handed over by
// systemd when SOCKET_ACTIVATION=1 is set.
func GetListener(addr string) (net.Listener, error) {
	if os.Getenv("SOCKET_ACTIVATION") != "1" {
		return net.Listen("tcp", addr)
	}
	ln, err := activationListener()
	if err != nil {
		return nil, err
	}
	return ln, nil
}

// activationListener picks up fd 3 (SD_LISTEN_FDS_START) when systemd passed
// exactly one socket addressed to this process.
func activationListener() (net.Listener, error) {
	if os.Getenv("LISTEN_FDS") != "1" {
		return nil, errors.New("socket activation requested but LISTEN_FDS != 1")
	}
	pid, err := strconv.Atoi(os.Getenv("LISTEN_PID"))
	if err != nil || pid != os.Getpid() {
		return nil, errors.New("socket activation fd is not addressed to this process")
	}
	f := os.NewFile(uintptr(3), "listener")
	if f == nil {
		return nil, errors.New("socket activation fd 3 unavailable")
	}
	return net.FileListener(f)
}
