package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Write emits one exemplar per line, in node order.
func Write(w io.Writer, assignment []int) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, x := range assignment {
		buf = strconv.AppendInt(buf[:0], int64(x), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("%w: %w", ErrUnwritableOutput, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnwritableOutput, err)
	}

	return nil
}

// WriteFile writes assignment to path atomically: the data goes to a
// temporary file in the same directory which is renamed over path only
// after a successful sync.
func WriteFile(path string, assignment []int) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnwritableOutput, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, assignment); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnwritableOutput, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnwritableOutput, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrUnwritableOutput, err)
	}

	return nil
}
