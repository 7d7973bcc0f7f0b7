package runner

// Result holds the outcome of one child process execution. A non-zero exit
// code is data here, never a Runner error.
type Result struct {
	ExitCode    int    // child exit code; -1 when the child was killed
	Stdout      []byte // captured stdout
	Stderr      []byte // captured stderr
	Interrupted bool   // run was cancelled and the child terminated early
}
