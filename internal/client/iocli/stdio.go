package iocli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio is the real-terminal IO implementation used by the client binary.
type Stdio struct{}

// NewStdio creates terminal-backed IO.
func NewStdio() IO {
	return &Stdio{}
}

// Println writes a line to stdout.
func (s *Stdio) Println(a ...any) {
	fmt.Println(a...)
}

// Printf writes formatted output to stdout.
func (s *Stdio) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

// ReadInput prompts and reads one line from stdin, with surrounding
// whitespace trimmed.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword prompts and reads a line from stdin with echo disabled,
// so the password never shows on screen.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	s.Printf("%s", prompt)
	fd := int(os.Stdin.Fd())
	pwBytes, err := term.ReadPassword(fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
