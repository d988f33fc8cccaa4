package lineinput

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/chzyer/readline"
)

// Terminal reads lines through chzyer/readline.
// History is kept in memory only and is never written to disk.
type Terminal struct {
	rl        *readline.Instance
	completer *dirCompleter
}

// NewTerminal creates a readline instance with Tab completion rooted at ".".
func NewTerminal(historyLimit int) (*Terminal, error) {
	completer := &dirCompleter{dir: "."}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 "> ",
		HistoryLimit:           historyLimit,
		DisableAutoSaveHistory: true,
		AutoComplete:           completer,
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	return &Terminal{rl: rl, completer: completer}, nil
}

// ReadLine shows prompt with seed pre-filled and editable.
func (t *Terminal) ReadLine(prompt, seed string) (string, error) {
	t.rl.SetPrompt(prompt)
	line, err := t.rl.ReadlineWithDefault(seed)
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrCanceled
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", fmt.Errorf("read line: %w", err)
	}
}

// AddHistory appends entry to the recall history.
func (t *Terminal) AddHistory(entry string) error {
	return t.rl.SaveHistory(entry)
}

// ClearHistory drops all recallable entries.
func (t *Terminal) ClearHistory() {
	t.rl.ResetHistory()
}

// SetCompletionDir moves the Tab completion root.
func (t *Terminal) SetCompletionDir(dir string) {
	t.completer.setDir(dir)
}

func (t *Terminal) Close() error {
	return t.rl.Close()
}

// dirCompleter implements readline.AutoCompleter for names relative to a
// directory that changes while the menu runs.
type dirCompleter struct {
	mu  sync.Mutex
	dir string
}

func (c *dirCompleter) setDir(dir string) {
	c.mu.Lock()
	c.dir = dir
	c.mu.Unlock()
}

func (c *dirCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	c.mu.Lock()
	root := c.dir
	c.mu.Unlock()
	return completePath(root, string(line[:pos]))
}
