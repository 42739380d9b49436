package embedded

import (
	"embed"
	"testing"
)

// TestInitAndAccess 初始化前访问报错；初始化后路径前缀被校验
func TestInitAndAccess(t *testing.T) {
	if IsInitialized() {
		t.Fatal("package unexpectedly initialized before Init")
	}
	if _, err := ReadFile("assets/config/resources.yaml"); err == nil {
		t.Error("ReadFile before Init should fail")
	}
	if _, err := Open("assets/config/resources.yaml"); err == nil {
		t.Error("Open before Init should fail")
	}

	Init(embed.FS{})
	if !IsInitialized() {
		t.Error("IsInitialized() = false after Init")
	}

	// 非 assets/ 前缀被拒绝
	if _, err := Open("images/foo.png"); err == nil {
		t.Error("Open with a non-assets path should fail")
	}

	// "./" 前缀被归一化后继续查找（空 FS 中文件不存在）
	if _, err := ReadFile("./assets/missing.png"); err == nil {
		t.Error("ReadFile of a missing file should fail")
	}
}
