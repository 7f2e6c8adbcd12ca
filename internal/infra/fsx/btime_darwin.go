//go:build darwin

package fsx

import (
	"os"
	"syscall"
	"time"
)

func creationTime(path string) (time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return fi.ModTime(), nil
	}
	return time.Unix(st.Birthtimespec.Unix()), nil
}
