package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func errInvalidOutput(s string) error {
	return fmt.Errorf("invalid --output: %s (want html|pretty|json)", s)
}

// readInput reads the named file, or stdin when no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		return b, "stdin", err
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", err
	}
	return b, args[0], nil
}
