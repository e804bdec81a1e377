package safeint

import (
	"fmt"
	"runtime"
)

// Loc identifies the call site that triggered a failure. It is diagnostic
// metadata only and never affects control flow.
type Loc struct {
	File     string
	Line     int
	Function string
}

func (l Loc) String() string {
	if l.File == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// callerLoc captures a source location on the current stack. A skip of 0
// identifies the caller of callerLoc, 1 its caller, and so on.
func callerLoc(skip int) Loc {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Loc{}
	}
	loc := Loc{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}
