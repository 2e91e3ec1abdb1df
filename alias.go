package sessh

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// NewSessionAlias returns a fresh, collision-free session alias of the form
// "sessh-<ulid>". Aliases are lowercase so they survive shells and tmux
// session naming untouched.
//
// Use this when a caller needs a session per workspace or per task and has
// no natural name for it.
func NewSessionAlias() string {
	return "sessh-" + strings.ToLower(ulid.Make().String())
}
