package terminal

import "fmt"

// Colors for terminal output.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// UI helper functions.

// Success prints a green success message.
func Success(msg string) {
	fmt.Printf("%s%s✓%s %s\n", Bold, Green, Reset, msg)
}

// Error prints a red error message.
func Error(msg string) {
	fmt.Printf("%s%s✗%s %s\n", Bold, Red, Reset, msg)
}

// Info prints a blue info message.
func Info(msg string) {
	fmt.Printf("%s%si%s %s\n", Bold, Blue, Reset, msg)
}

// Warning prints a yellow warning message.
func Warning(msg string) {
	fmt.Printf("%s%s!%s %s\n", Bold, Yellow, Reset, msg)
}
