package main

import (
	"fmt"
	"os/exec"
	"runtime"
)

// copyToClipboard writes text to the system clipboard through the platform
// clipboard helper
func copyToClipboard(text string) error {
	cmd, err := clipboardCommand()
	if err != nil {
		return err
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	if _, err := fmt.Fprint(stdin, text); err != nil {
		stdin.Close()
		return err
	}

	// The pipe must be closed for the helper to exit
	if err := stdin.Close(); err != nil {
		return err
	}
	return cmd.Wait()
}

func clipboardCommand() (*exec.Cmd, error) {
	if runtime.GOOS == "darwin" {
		return exec.Command("pbcopy"), nil
	}

	candidates := [][]string{
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			return exec.Command(c[0], c[1:]...), nil
		}
	}
	return nil, fmt.Errorf("no clipboard helper found (need pbcopy, wl-copy, xclip or xsel)")
}
