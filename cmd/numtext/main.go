// Command numtext converts between numbers and English words.
//
//	numtext 1234                 # one thousand , two hundred and thirty-four
//	numtext forty-two            # 42
//	printf '5\nsix\n' | numtext  # one conversion per line
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(hasPipedInput)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// hasPipedInput detects if there's data piped to stdin
func hasPipedInput() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
