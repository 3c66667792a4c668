//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 准备 Android 上 gdata 使用的存储目录
//
// gdata 写入 /data/data/{包名}/ 下的子目录，但不会预先创建它；
// 这里提前创建并写一个探测文件，确认目录可写。
func EnsureStorageDir() error {
	pkg, err := androidPackage()
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// androidPackage 从 /proc/self/cmdline 读取包名（去掉 NUL 和换行）
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	name := strings.Map(func(r rune) rune {
		if r == 0 || r == '\n' {
			return -1
		}
		return r
	}, string(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}

// StorageLocation 设置文件所在的目录（只用于日志）
func StorageLocation(string) string {
	pkg, err := androidPackage()
	if err != nil {
		return "unknown"
	}
	return filepath.Join("/data/data", pkg)
}
