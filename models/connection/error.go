package connection

import "fmt"

// What the session loop does after a failed read or write.
const (
	ConnLoopBreak uint8 = iota
	ConnLoopRetry
	ConnLoopAbnormalClosureRetry
	ConnLoopContinue
)

// ConnErr is a connection failure together with the loop action it
// calls for.
type ConnErr struct {
	action uint8
	cause  error
}

func NewConnErr(action uint8, cause error) ConnErr {
	return ConnErr{action: action, cause: cause}
}

func (c ConnErr) Error() string {
	return fmt.Sprintf("connection error - action: %d\tcause: %v", c.action, c.cause)
}

func (c ConnErr) Unwrap() error {
	return c.cause
}

func (c ConnErr) Action() uint8 {
	return c.action
}
