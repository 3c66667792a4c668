//go:build !android

package utils

import "os"

// EnsureStorageDir 桌面平台上 gdata 会自己创建存储目录，不需要准备
func EnsureStorageDir() error {
	return nil
}

// StorageLocation 设置文件所在的大致位置（只用于日志）
func StorageLocation(appName string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "unknown"
	}
	return dir + string(os.PathSeparator) + appName
}
