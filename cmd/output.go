package cmd

import (
	"io"
	"os"
)

// Stream accessors for commands. They resolve through rootCmd at call time
// so tests can redirect them with SetIn, SetOut and SetErr.
var (
	inReaderFunc  = func() io.Reader { return os.Stdin }
	outWriterFunc = func() io.Writer { return os.Stdout }
	errWriterFunc = func() io.Writer { return os.Stderr }
)

func init() {
	inReaderFunc = func() io.Reader { return rootCmd.InOrStdin() }
	outWriterFunc = func() io.Writer { return rootCmd.OutOrStdout() }
	errWriterFunc = func() io.Writer { return rootCmd.ErrOrStderr() }
}

// inReader feeds the message prompt.
func inReader() io.Reader {
	return inReaderFunc()
}

// outWriter receives command results.
func outWriter() io.Writer {
	return outWriterFunc()
}

// errWriter receives the prompt, status lines and logs.
func errWriter() io.Writer {
	return errWriterFunc()
}
