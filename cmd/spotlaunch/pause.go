package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// pause blocks until a key is pressed. A double-click launch opens a
// console window that closes with the process; holding it keeps the
// run's output readable whatever happened before. When stdin is not a
// terminal a plain line read stands in for the keypress.
func pause() {
	fmt.Print("Press any key to continue . . . ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err == nil {
			buf := make([]byte, 1)
			_, _ = os.Stdin.Read(buf)
			_ = term.Restore(fd, old)
			fmt.Println()
			return
		}
	}

	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
