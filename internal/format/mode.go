package format

// File mode bits as they appear in git tree entries.
const (
	modeTypeMask = 0o170000
	modeDir      = 0o040000
	modeSymlink  = 0o120000
	modeGitlink  = 0o160000
)

// ModeWidth is the content width of the mode column.
const ModeWidth = len("-rw-r--r--")

// IsDir reports whether a git tree mode names a directory.
func IsDir(mode uint32) bool {
	return mode&modeTypeMask == modeDir
}

// Mode renders a git tree entry mode as a permission string like
// "-rw-r--r--" or "drwxr-xr-x".
func Mode(mode uint32) string {
	buf := []byte("----------")

	switch mode & modeTypeMask {
	case modeDir:
		buf[0] = 'd'
	case modeSymlink:
		buf[0] = 'l'
	case modeGitlink:
		buf[0] = 'm'
	}

	perms := []struct {
		bit uint32
		ch  byte
	}{
		{0o400, 'r'}, {0o200, 'w'}, {0o100, 'x'},
		{0o040, 'r'}, {0o020, 'w'}, {0o010, 'x'},
		{0o004, 'r'}, {0o002, 'w'}, {0o001, 'x'},
	}
	for i, p := range perms {
		if mode&p.bit != 0 {
			buf[i+1] = p.ch
		}
	}
	return string(buf)
}
