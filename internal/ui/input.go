package ui

import (
	"bufio"
	"os"
	"strings"
)

// PromptBranchName asks for a branch name, returning defaultName when the
// user just presses enter. Returns false if stdin is closed.
func PromptBranchName(prompt string, defaultName string) (string, bool) {
	reader := bufio.NewReader(os.Stdin)
	os.Stdout.WriteString(prompt + " [" + defaultName + "]: ")
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultName, true
	}
	return input, true
}

// ConfirmYesNo prompts for a yes/no answer. Only "y" or "yes"
// (case-insensitive) count as yes.
func ConfirmYesNo(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	os.Stdout.WriteString(prompt + " [y/N]: ")
	input, _ := reader.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
