package splitpane

import (
	"errors"
	"fmt"
)

// ErrChildCount is returned by every layout attempt while the container does
// not hold exactly two panes.
var ErrChildCount = errors.New("split pane must have exactly two panes")

// ChildCountError carries the number of panes found.
type ChildCountError struct {
	Got int
}

func (e *ChildCountError) Error() string {
	return fmt.Sprintf("%v, got %d", ErrChildCount, e.Got)
}

// Is makes errors.Is(err, ErrChildCount) match.
func (e *ChildCountError) Is(target error) bool {
	return target == ErrChildCount
}
