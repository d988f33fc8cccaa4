package main

// userError is an error meant for the terminal: a short message plus an
// optional hint on how to fix it.
type userError struct {
	msg  string
	hint string
	err  error
}

func (e *userError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *userError) Hint() string  { return e.hint }
func (e *userError) Unwrap() error { return e.err }
