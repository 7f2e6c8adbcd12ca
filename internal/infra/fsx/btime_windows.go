//go:build windows

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
	d, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return fi.ModTime(), nil
	}
	return time.Unix(0, d.CreationTime.Nanoseconds()), nil
}
