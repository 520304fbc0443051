package game

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyReport puts text on the system clipboard.
func CopyReport(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("copy report: no clipboard utility available")
	}
	if text == "" {
		text = " "
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy report: %w", err)
	}
	return nil
}
