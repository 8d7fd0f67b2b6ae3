package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

var stdin = bufio.NewReader(os.Stdin)

// prompt reads one line from stdin, trimming whitespace and the quotes
// shells leave around dragged-in paths.
func prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSpace(line)
	line = strings.Trim(line, `"'`)
	return line, nil
}

// resolveInput returns the workbook path: the positional argument when
// given, otherwise an interactive prompt.
func resolveInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	path, err := prompt("📂 Path to the consumption workbook (.xlsx): ")
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", fmt.Errorf("no input file given")
	}
	return path, nil
}

// resolveOutput returns the export path: the -o flag when set, a
// prompt with an Enter-for-default in interactive mode, or def.
func resolveOutput(flagVal, def string, interactive bool) (string, error) {
	if flagVal != "" {
		return flagVal, nil
	}
	if !interactive {
		return def, nil
	}
	path, err := prompt(fmt.Sprintf("💾 Output file [%s]: ", def))
	if err != nil {
		return "", err
	}
	if path == "" {
		return def, nil
	}
	return path, nil
}
