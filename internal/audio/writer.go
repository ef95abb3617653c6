package audio

import (
	"fmt"
	"io"
	"os"
)

// WriteFile writes the synthesized audio to path in a single write.
// The file is closed on every path. A partially written file is left in place.
func WriteFile(path string, data []byte) (err error) {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	n, err := out.Write(data)
	if err != nil {
		return fmt.Errorf("failed to write audio content: %w", err)
	}
	if n != len(data) {
		return fmt.Errorf("failed to write audio content: %w", io.ErrShortWrite)
	}
	return nil
}

// ReportWritten prints the confirmation line for a written audio file
func ReportWritten(w io.Writer, path string) {
	fmt.Fprintf(w, "Audio content written to file \"%s\"\n", path)
}
