package filemenu

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/Bibi40k/filemenu/pkg/lineinput"
)

// Menu resolves a file path interactively. A Menu holds no per-invocation
// state and may be reused for several Select calls.
type Menu struct {
	cfg    Config
	reader LineReader
	out    io.Writer
	logger *slog.Logger
}

// Option configures a Menu.
type Option func(*Menu)

// WithConfig replaces DefaultConfig().
func WithConfig(cfg Config) Option {
	return func(m *Menu) { m.cfg = cfg }
}

// WithLineReader injects the line input. Run creates a terminal reader when
// none is given.
func WithLineReader(r LineReader) Option {
	return func(m *Menu) { m.reader = r }
}

// WithOutput redirects the listing, prompts and notices (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(m *Menu) { m.out = w }
}

// WithLogger sets the structured logger (default: discard).
func WithLogger(l *slog.Logger) Option {
	return func(m *Menu) { m.logger = l }
}

func newMenu(opts ...Option) *Menu {
	m := &Menu{
		cfg:    DefaultConfig(),
		out:    os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewMenu builds a Menu reading from reader.
func NewMenu(reader LineReader, opts ...Option) (*Menu, error) {
	m := newMenu(append([]Option{WithLineReader(reader)}, opts...)...)
	if m.reader == nil {
		return nil, errors.New("filemenu: nil line reader")
	}
	if err := m.cfg.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Select runs one menu session. When saving, sequential names take the next
// free counter and existing targets go through the collision dialog; when
// loading, sequential names take the last counter and the target must exist.
// dirs are the default directories; the first is the starting directory and
// is created if missing. An empty dirs falls back to Config.DefaultDirectory.
func (m *Menu) Select(saving bool, dirs []string) (string, error) {
	defaults := defaultDirectories(dirs, m.cfg.DefaultDirectory)

	created, err := ensureDir(defaults[0])
	if err != nil {
		return "", err
	}
	if created {
		abs, absErr := filepath.Abs(defaults[0])
		if absErr != nil {
			abs = defaults[0]
		}
		notice(m.out, "Map dir not found, creating <%s>.", abs)
	}

	logger := m.logger.With("session", uuid.NewString())
	s := &session{
		dialog:   dialog{cfg: m.cfg, reader: m.reader, out: m.out, logger: logger},
		saving:   saving,
		mode:     ModeFor(saving),
		defaults: defaults,
		cwd:      defaults[0],
	}
	logger.Debug("menu started", "saving", saving, "dir", s.cwd)
	return s.run()
}

func defaultDirectories(dirs []string, fallback string) []string {
	var out []string
	for _, d := range dirs {
		if strings.TrimSpace(d) == "" {
			continue
		}
		out = append(out, withTrailingSlash(d))
	}
	if len(out) == 0 {
		out = []string{withTrailingSlash(fallback)}
	}
	return out
}

type state int

const (
	stateScanDir state = iota
	stateReadLine
	stateConfirmCreate
	stateResolveName
	stateResolveCollision
	stateDone
	stateAborted
)

func (s state) String() string {
	switch s {
	case stateScanDir:
		return "scan-dir"
	case stateReadLine:
		return "read-line"
	case stateConfirmCreate:
		return "confirm-create"
	case stateResolveName:
		return "resolve-name"
	case stateResolveCollision:
		return "resolve-collision"
	case stateDone:
		return "done"
	case stateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// session is the state of one Select call. It is dropped when Select returns.
type session struct {
	dialog

	saving   bool
	mode     Mode
	defaults []string

	cwd        string // always ends in "/"
	listing    Listing
	dirChanged bool // cwd moved since the listing was last shown
	history    []string

	seed        string
	pendingDir  string
	pendingFile string
	name        string

	result string
	err    error
}

func (s *session) run() (string, error) {
	st := stateScanDir
	for {
		switch st {
		case stateDone:
			s.logger.Debug("menu finished", "path", s.result)
			return s.result, nil
		case stateAborted:
			s.logger.Debug("menu aborted", "error", s.err)
			return "", s.err
		}
		s.logger.Debug("menu state", "state", st.String(), "dir", s.cwd)
		st = s.transition(st)
	}
}

func (s *session) transition(st state) state {
	switch st {
	case stateScanDir:
		return s.scanDir()
	case stateReadLine:
		return s.readLine()
	case stateConfirmCreate:
		return s.confirmCreate()
	case stateResolveName:
		return s.resolveName()
	case stateResolveCollision:
		return s.resolveFileCollision()
	default:
		return s.abort(fmt.Errorf("filemenu: unexpected state %s", st))
	}
}

func (s *session) abort(err error) state {
	s.err = err
	return stateAborted
}

func (s *session) candidates() Candidates {
	return Candidates{Defaults: s.defaults, Dirs: s.listing.Dirs, Files: s.listing.Files}
}

// scanDir refreshes the listing, shows it and reloads the recall history.
func (s *session) scanDir() state {
	listing, err := Scan(s.cwd, s.cfg.Extension)
	if err != nil {
		return s.abort(err)
	}
	s.listing = listing
	s.dirChanged = false
	if c, ok := s.reader.(completionDirSetter); ok {
		c.SetCompletionDir(s.cwd)
	}

	printHelp(s.out, s.cfg, s.saving, s.cwd)
	renderCandidates(s.out, s.cfg, s.candidates())

	// Pushed least relevant first so the first recall is the first listed file.
	s.history = s.history[:0]
	for i := len(s.defaults) - 1; i >= 0; i-- {
		s.history = append(s.history, s.defaults[i])
	}
	for i := len(s.listing.Files) - 1; i >= 0; i-- {
		s.history = append(s.history, s.listing.Files[i])
	}
	if err := s.restoreHistory(); err != nil {
		return s.abort(err)
	}
	return stateReadLine
}

func (s *session) restoreHistory() error {
	s.reader.ClearHistory()
	for _, h := range s.history {
		if err := s.reader.AddHistory(h); err != nil {
			return fmt.Errorf("add history: %w", err)
		}
	}
	return nil
}

func (s *session) readLine() state {
	raw, err := s.reader.ReadLine(promptMarker, s.seed)
	switch {
	case err == nil:
	case errors.Is(err, lineinput.ErrCanceled):
		s.seed = ""
		return stateReadLine
	case lineinput.IsEOF(err):
		return s.abort(ErrManuallyTerminated)
	default:
		return s.abort(fmt.Errorf("read input: %w", err))
	}

	line := s.cfg.Normalize(raw)
	if line != "" {
		if err := s.reader.AddHistory(line); err != nil {
			return s.abort(fmt.Errorf("add history: %w", err))
		}
		s.history = append(s.history, line)
	}

	sel := s.cfg.Parse(line, s.candidates())
	switch {
	case sel.OutOfRange:
		notice(s.out, "%s is not available.", line)
	case sel.Dir != "":
		return s.changeDir(sel)
	case sel.File != "":
		s.pendingFile = sel.File
		return stateResolveName
	}
	s.seed = ""
	return stateReadLine
}

// changeDir resolves a directory selection relative to cwd, unless it is one
// of the default directories or absolute.
func (s *session) changeDir(sel Selection) state {
	target := sel.Dir
	if !sel.DefaultDir && !filepath.IsAbs(target) {
		target = filepath.Join(s.cwd, target)
	}
	target = withTrailingSlash(target)

	info, err := os.Stat(filepath.Clean(target))
	switch {
	case err == nil && info.IsDir():
		if err := s.adoptDir(target); err != nil {
			return s.abort(err)
		}
		return s.afterDirChange(sel.File)
	case err == nil, errors.Is(err, syscall.ENOTDIR):
		notice(s.out, "%s is not a directory.", target)
	case errors.Is(err, fs.ErrNotExist):
		if s.saving {
			s.pendingDir = target
			s.pendingFile = sel.File
			return stateConfirmCreate
		}
		notice(s.out, "Directory %s does not exist.", target)
	default:
		return s.abort(fmt.Errorf("stat %s: %w", target, err))
	}
	s.seed = ""
	return stateReadLine
}

func (s *session) confirmCreate() state {
	switch s.confirm(fmt.Sprintf("Directory %s does not exist. Create it?", s.pendingDir)) {
	case OutcomeAccept:
		if err := os.MkdirAll(s.pendingDir, 0755); err != nil {
			return s.abort(fmt.Errorf("create dir %s: %w", s.pendingDir, err))
		}
		s.logger.Info("Directory created", "path", s.pendingDir)
		if err := s.adoptDir(s.pendingDir); err != nil {
			return s.abort(err)
		}
		return s.afterDirChange(s.pendingFile)
	case OutcomeTerminated:
		return s.abort(ErrManuallyTerminated)
	default:
		s.seed = ""
		return stateReadLine
	}
}

// adoptDir makes dir current and refreshes the listing so later naming
// decisions never see the previous directory's files.
func (s *session) adoptDir(dir string) error {
	listing, err := Scan(dir, s.cfg.Extension)
	if err != nil {
		return err
	}
	s.cwd = withTrailingSlash(dir)
	s.listing = listing
	s.dirChanged = true
	return nil
}

func (s *session) afterDirChange(file string) state {
	s.seed = ""
	if file != "" {
		s.pendingFile = file
		return stateResolveName
	}
	return stateScanDir
}

// reprompt re-enters the outer loop when the directory changed since the
// listing was shown, the inner loop otherwise.
func (s *session) reprompt() state {
	if s.dirChanged {
		return stateScanDir
	}
	return stateReadLine
}

func (s *session) resolveName() state {
	name := s.pendingFile
	if strings.HasSuffix(name, s.cfg.sep()) {
		fmt.Fprintln(s.out, "Getting sequential name...")
		derived, err := s.cfg.Derive(name, s.listing.Files, s.mode)
		if err != nil {
			return s.abort(err)
		}
		name = derived
	}

	fixed, err := s.cfg.withExtension(name)
	if err != nil {
		notice(s.out, "%v", err)
		s.seed = fixed
		return s.reprompt()
	}
	if err := s.cfg.checkLength(fixed); err != nil {
		return s.abort(err)
	}
	s.name = fixed
	return stateResolveCollision
}

func (s *session) resolveFileCollision() state {
	name, outcome, err := s.resolveCollision(s.cwd, s.name, s.listing.Files, s.saving)
	if err != nil {
		return s.abort(err)
	}
	switch outcome {
	case OutcomeAccept:
		s.result = s.cwd + name
		return stateDone
	case OutcomeFileDeleted:
		return s.abort(ErrFileDeleted)
	case OutcomeTerminated:
		return s.abort(ErrManuallyTerminated)
	}

	s.seed = ""
	fmt.Fprintln(s.out, "Please select a new file name.")
	if s.dirChanged {
		return stateScanDir
	}
	if err := s.restoreHistory(); err != nil {
		return s.abort(err)
	}
	printHelp(s.out, s.cfg, s.saving, s.cwd)
	renderCandidates(s.out, s.cfg, s.candidates())
	return stateReadLine
}
