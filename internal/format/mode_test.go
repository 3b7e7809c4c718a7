package format

import "testing"

func TestMode(t *testing.T) {
	tests := []struct {
		name string
		mode uint32
		want string
	}{
		{"regular file", 0o100644, "-rw-r--r--"},
		{"executable", 0o100755, "-rwxr-xr-x"},
		{"directory", 0o040755, "drwxr-xr-x"},
		{"symlink", 0o120000, "l---------"},
		{"gitlink", 0o160000, "m---------"},
		{"no perms", 0o100000, "----------"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mode(tt.mode); got != tt.want {
				t.Errorf("Mode(%o) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func TestIsDir(t *testing.T) {
	if !IsDir(0o040755) {
		t.Error("IsDir(0o040755) = false")
	}
	if IsDir(0o100644) {
		t.Error("IsDir(0o100644) = true")
	}
	if IsDir(0o120000) {
		t.Error("IsDir(symlink) = true")
	}
}

func TestModeWidth(t *testing.T) {
	for _, mode := range []uint32{0o100644, 0o040755, 0o120000} {
		if got := len(Mode(mode)); got != ModeWidth {
			t.Errorf("len(Mode(%o)) = %d, want %d", mode, got, ModeWidth)
		}
	}
}
