package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readOrderText returns the contents of the file named by the first argument,
// or stdin when there is none or it is "-".
func readOrderText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read order from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read order file: %w", err)
	}
	return string(data), nil
}
