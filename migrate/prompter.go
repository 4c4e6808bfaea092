package migrate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter confirms destructive operations with the operator.
type Prompter interface {
	Confirm(prompt string) (bool, error)
}

// StdinPrompter reads y/n answers from an input stream, stdout prompting.
type StdinPrompter struct {
	In  io.Reader
	Out io.Writer
}

// NewStdinPrompter prompts on stdout and reads stdin.
func NewStdinPrompter() *StdinPrompter {
	return &StdinPrompter{In: os.Stdin, Out: os.Stdout}
}

// Confirm asks until it reads y/yes or n/no.
func (p *StdinPrompter) Confirm(prompt string) (bool, error) {
	reader := bufio.NewReader(p.In)
	for {
		if _, err := fmt.Fprintf(p.Out, "%s [y/N]: ", prompt); err != nil {
			return false, err
		}
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
	}
}

// MockPrompter returns a fixed answer.
type MockPrompter struct {
	Confirmation bool
	// Prompts records every prompt asked.
	Prompts []string
}

// Confirm implements Prompter.
func (p *MockPrompter) Confirm(prompt string) (bool, error) {
	p.Prompts = append(p.Prompts, prompt)
	return p.Confirmation, nil
}
