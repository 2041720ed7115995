package output

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"
)

// PromptFor returns the prompt shown when a script asks for a value.
func PromptFor(name string) string {
	return fmt.Sprintf("Enter value for %s: ", name)
}

type lineResult struct {
	line string
	err  error
}

// ReaderInput reads input values line by line from a stream. Reads honour
// context cancellation; a line that arrives after a cancelled read is
// handed to the next one.
type ReaderInput struct {
	src    *bufio.Reader
	prompt io.Writer

	once  sync.Once
	lines chan lineResult
}

// NewReaderInput reads from src and writes prompts to prompt. A nil
// prompt writer disables prompting.
func NewReaderInput(src io.Reader, prompt io.Writer) *ReaderInput {
	return &ReaderInput{
		src:    bufio.NewReader(src),
		prompt: prompt,
		lines:  make(chan lineResult),
	}
}

func (in *ReaderInput) start() {
	go func() {
		for {
			line, err := in.src.ReadString('\n')
			if line != "" {
				in.lines <- lineResult{line: strings.TrimRight(line, "\r\n")}
			}
			if err != nil {
				in.lines <- lineResult{err: err}
				return
			}
		}
	}()
}

// ReadInput implements engine.InputReader.
func (in *ReaderInput) ReadInput(ctx context.Context, name string) (string, error) {
	in.once.Do(in.start)
	if in.prompt != nil {
		_, _ = io.WriteString(in.prompt, PromptFor(name))
	}

	select {
	case res, ok := <-in.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			// Keep reporting the terminal error to later reads.
			close(in.lines)
			return "", res.err
		}
		return res.line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ReadlineInput reads input values through a readline instance, so the
// REPL and scripts share line editing and history.
type ReadlineInput struct {
	rl *readline.Instance

	mu      sync.Mutex
	pending chan lineResult
}

// NewReadlineInput wraps rl.
func NewReadlineInput(rl *readline.Instance) *ReadlineInput {
	return &ReadlineInput{rl: rl}
}

// ReadInput implements engine.InputReader.
func (in *ReadlineInput) ReadInput(ctx context.Context, name string) (string, error) {
	in.mu.Lock()
	ch := in.pending
	if ch == nil {
		ch = make(chan lineResult, 1)
		in.pending = ch
		prev := in.rl.Config.Prompt
		in.rl.SetPrompt(PromptFor(name))
		go func() {
			line, err := in.rl.Readline()
			in.rl.SetPrompt(prev)
			ch <- lineResult{line: line, err: err}
		}()
	}
	in.mu.Unlock()

	select {
	case res := <-ch:
		in.mu.Lock()
		in.pending = nil
		in.mu.Unlock()
		if errors.Is(res.err, readline.ErrInterrupt) {
			return "", context.Canceled
		}
		return strings.TrimSpace(res.line), res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
