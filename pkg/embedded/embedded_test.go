package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/effects/chest.yaml": {Data: []byte("effects: {}\n")},
		"data/effects/bonus.yaml": {Data: []byte("effects: {}\n")},
		"data/readme.txt":         {Data: []byte("hello")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
}

// TestNotInitialized 未初始化时所有访问函数都应返回错误
func TestNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := Open("data/readme.txt"); err != errNotInitialized {
		t.Errorf("Open() error = %v, want %v", err, errNotInitialized)
	}
	if _, err := ReadFile("data/readme.txt"); err != errNotInitialized {
		t.Errorf("ReadFile() error = %v, want %v", err, errNotInitialized)
	}
	if _, err := Glob("data/*.txt"); err != errNotInitialized {
		t.Errorf("Glob() error = %v, want %v", err, errNotInitialized)
	}
	if _, err := ReadDir("data"); err != errNotInitialized {
		t.Errorf("ReadDir() error = %v, want %v", err, errNotInitialized)
	}
	if Exists("data/readme.txt") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestReadFile 测试路径标准化与前缀校验
func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"标准路径", "data/readme.txt", "hello", false},
		{"点斜杠前缀", "./data/readme.txt", "hello", false},
		{"未知前缀", "assets/readme.txt", "", true},
		{"文件不存在", "data/missing.txt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// TestGlobAndReadDir 测试目录枚举
func TestGlobAndReadDir(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	matches, err := Glob("data/effects/*.yaml")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob() returned %d files, want 2: %v", len(matches), matches)
	}

	entries, err := ReadDir("data/effects")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("ReadDir() returned %d entries, want 2", len(entries))
	}

	if !Exists("data/effects/chest.yaml") {
		t.Error("Exists(chest.yaml) = false, want true")
	}
	if Exists("data/effects/none.yaml") {
		t.Error("Exists(none.yaml) = true, want false")
	}
}
