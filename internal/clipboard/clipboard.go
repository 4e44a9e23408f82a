// Package clipboard writes text to the system clipboard.
package clipboard

import (
	atotto "github.com/atotto/clipboard"
)

// Write replaces the system clipboard contents with text.
func Write(text string) error {
	return atotto.WriteAll(text)
}
