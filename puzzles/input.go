package puzzles

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pthm-cable/advent/components"
)

// InputPath returns the location of a puzzle's input: <dir>/<year>/day-<day>-input.txt.
func InputPath(dir string, p components.Puzzle) string {
	return filepath.Join(dir, p.Year.String(), fmt.Sprintf("day-%d-input.txt", p.Day))
}

// InputInfo describes a puzzle input file on disk.
type InputInfo struct {
	Path   string
	Exists bool
	Lines  int
	Bytes  int64
}

// ReadInputInfo stats and counts the lines of a puzzle's input file.
// A missing file is not an error; Exists is false.
func ReadInputInfo(dir string, p components.Puzzle) (InputInfo, error) {
	info := InputInfo{Path: InputPath(dir, p)}

	f, err := os.Open(info.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return info, fmt.Errorf("stat input: %w", err)
	}
	info.Exists = true
	info.Bytes = st.Size()

	lines, err := countLines(f)
	if err != nil {
		return info, fmt.Errorf("reading input: %w", err)
	}
	info.Lines = lines
	return info, nil
}

// countLines counts newline-terminated lines plus a final unterminated one.
// Line length is unbounded.
func countLines(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	lines := 0
	var last byte
	var read bool
	for {
		chunk, err := br.ReadSlice('\n')
		if n := len(chunk); n > 0 {
			lines += bytes.Count(chunk, []byte{'\n'})
			last = chunk[n-1]
			read = true
		}
		switch {
		case err == nil, errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if read && last != '\n' {
				lines++
			}
			return lines, nil
		default:
			return lines, err
		}
	}
}
