package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// lineReader abstracts where parse-time input comes from: readline when
// stdin is a terminal, a plain buffered reader otherwise (piped input,
// or the tail of a stdin grammar).
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

type directLineReader struct {
	r *bufio.Reader
}

func newDirectLineReader(r io.Reader) *directLineReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &directLineReader{r: br}
	}
	return &directLineReader{r: bufio.NewReader(r)}
}

func (d *directLineReader) ReadLine() (string, error) {
	line, err := d.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (d *directLineReader) Close() error {
	return nil
}

type interactiveLineReader struct {
	rl *readline.Instance
}

func newInteractiveLineReader(prompt string) (*interactiveLineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, err
	}
	return &interactiveLineReader{rl: rl}, nil
}

func (i *interactiveLineReader) ReadLine() (string, error) {
	line, err := i.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", io.EOF
	}
	return line, err
}

func (i *interactiveLineReader) Close() error {
	return i.rl.Close()
}

// newStdinLineReader picks the reader matching how stdin is connected.
func newStdinLineReader(prompt string) (lineReader, error) {
	if readline.IsTerminal(int(os.Stdin.Fd())) {
		return newInteractiveLineReader(prompt)
	}
	return newDirectLineReader(os.Stdin), nil
}
