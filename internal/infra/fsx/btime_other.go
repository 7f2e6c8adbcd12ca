//go:build !linux && !darwin && !windows

package fsx

import (
	"os"
	"time"
)

// 没有可移植的创建时间：退化为修改时间。
func creationTime(path string) (time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}
