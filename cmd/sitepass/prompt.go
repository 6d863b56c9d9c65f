package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"
)

// Environment variable consulted before prompting for the master secret
const secretEnvVar = "SITEPASS_SECRET"

// zeroBytes overwrites a byte slice with zeros
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// getSecret obtains the master secret. The environment variable wins;
// otherwise the user is prompted at the terminal without echo, twice when
// confirm is set.
func getSecret(confirm bool) ([]byte, error) {
	if envSecret := os.Getenv(secretEnvVar); envSecret != "" {
		return []byte(envSecret), nil
	}

	secret, err := readSecret("Master secret: ")
	if err != nil {
		return nil, err
	}
	if !confirm {
		return secret, nil
	}

	again, err := readSecret("Confirm master secret: ")
	if err != nil {
		zeroBytes(secret)
		return nil, err
	}
	if !bytes.Equal(secret, again) {
		zeroBytes(secret)
		zeroBytes(again)
		return nil, fmt.Errorf("secrets do not match")
	}

	zeroBytes(again)
	return secret, nil
}

func readSecret(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		return secret, err
	}

	// Stdin is piped; prompt on the controlling terminal instead
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("cannot read secret: stdin is piped and /dev/tty is not available, set %s", secretEnvVar)
	}
	defer tty.Close()

	secret, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(os.Stderr)
	return secret, err
}
