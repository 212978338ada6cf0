package tmux

import "strings"

// baseArgs prefixes every command with the target server socket.
func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}
