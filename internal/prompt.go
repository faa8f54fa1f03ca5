package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrTooManyTries is returned when a validated prompt runs out of attempts.
var ErrTooManyTries = errors.New("too many tries")

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// Prompter reads whole lines from a connection. A session keeps a single
// Prompter so input buffered after one line is not lost to the next read.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

func NewPrompter(rw io.ReadWriter) *Prompter {
	return &Prompter{r: bufio.NewReader(rw), w: rw}
}

// Write sends output to the connection.
func (p *Prompter) Write(b []byte) (int, error) {
	return p.w.Write(b)
}

// ReadLine returns the next line without its line ending. A final line
// without a newline is still returned; io.EOF follows it.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) Prompt(prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	tries := 0
	for {
		_, err := io.WriteString(p.w, prompt)
		if err != nil {
			return "", err
		}

		input, err := p.ReadLine()
		if err != nil {
			return "", err
		}

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				_, err = io.WriteString(p.w, msg)
				if err != nil {
					return "", err
				}

				tries++
				if config.tries > 0 && config.tries == tries {
					return "", fmt.Errorf("prompt %q: %w", strings.TrimSpace(prompt), ErrTooManyTries)
				}

				continue
			}
		}

		return input, nil
	}
}

func (p *Prompter) PromptYN(prompt string) (bool, error) {
	str, err := p.Prompt(prompt, WithValidator(
		func(str string) (bool, string) {
			switch strings.ToLower(strings.TrimSpace(str)) {
			case "y", "yes", "n", "no":
				return true, ""
			default:
				return false, "enter 'yes' or 'no'\n"
			}
		},
	))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(str)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
