package commands

import (
	"fmt"
	"io"
	"os"
)

// readCSVInput reads CSV text for a command. With a positional file
// argument it reads that file; with no argument or "-" it reads from
// in (os.Stdin when nil).
func readCSVInput(args []string, in io.Reader) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("too many arguments")
	}
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
