package filemenu

import "github.com/Bibi40k/filemenu/pkg/lineinput"

// LineReader abstracts the blocking line input used by the menu.
// ReadLine returns lineinput.ErrCanceled when the user abandons the line and
// io.EOF when the user ends the session. The real implementations live in
// pkg/lineinput; tests inject a scripted reader or mocks.LineReader.
type LineReader interface {
	ReadLine(prompt, seed string) (string, error)
	AddHistory(entry string) error
	ClearHistory()
}

// compile-time interface compliance checks
var (
	_ LineReader = (*lineinput.Terminal)(nil)
	_ LineReader = (*lineinput.Plain)(nil)
)

// completionDirSetter is implemented by readers that complete names relative
// to the menu's current directory.
type completionDirSetter interface {
	SetCompletionDir(dir string)
}
