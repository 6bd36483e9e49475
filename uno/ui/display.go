// Package ui talks to the person at the keyboard: it writes game messages and
// reads answers line by line, asking again until an answer makes sense.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ratel-online/uno/consts"
)

type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	delay   time.Duration
}

type ConsoleOption func(*Console)

// WithDelay pauses after every message so the table can be followed.
func WithDelay(delay time.Duration) ConsoleOption {
	return func(c *Console) {
		c.delay = delay
	}
}

func NewConsole(in io.Reader, out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) Printfln(format string, args ...interface{}) {
	c.Println(fmt.Sprintf(format, args...))
}

func (c *Console) Println(args ...interface{}) {
	c.Print(fmt.Sprintln(args...))
}

// Print writes text as it is; game messages carry their own line breaks.
func (c *Console) Print(text string) {
	_, _ = io.WriteString(c.out, text)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
}

// readLine blocks for the next line. There is no way to go on without
// input, so a closed input panics with consts.ErrorsInputClosed.
func (c *Console) readLine() string {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			panic(fmt.Errorf("read console: %v: %w", err, consts.ErrorsInputClosed))
		}
		panic(consts.ErrorsInputClosed)
	}
	return strings.TrimSpace(c.scanner.Text())
}
