// Package terminal provides ANSI output helpers for the CLI.
package terminal

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Colors for terminal output.
var (
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

func init() {
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		DisableColor()
	}
}

// DisableColor blanks all color codes. Output stays plain text.
func DisableColor() {
	Reset, Bold, Dim = "", "", ""
	Red, Green, Yellow, Blue = "", "", "", ""
	Magenta, Cyan, White = "", "", ""
}

// Spinner provides a terminal spinner for long-running operations.
type Spinner struct {
	mu      sync.Mutex
	message string
	running bool
	done    chan struct{}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewSpinner creates a new spinner.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		done:    make(chan struct{}),
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go func() {
		i := 0
		for {
			select {
			case <-s.done:
				return
			default:
				s.mu.Lock()
				msg := s.message
				s.mu.Unlock()

				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Printf("\r%s%s %s%s", Cyan, frame, msg, Reset)
				i++
				time.Sleep(80 * time.Millisecond)
			}
		}
	}()
}

// Update changes the spinner message.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// Stop stops the spinner and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.done)
	fmt.Printf("\r%s\r", strings.Repeat(" ", 80))
}

// StopWithMessage stops the spinner and prints a final message.
func (s *Spinner) StopWithMessage(message string) {
	s.Stop()
	fmt.Println(message)
}

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

// Header prints a bold header.
func Header(msg string) {
	fmt.Printf("\n%s%s%s\n", Bold, msg, Reset)
}

// Detail prints an indented detail line.
func Detail(label, value string) {
	fmt.Printf("  %s%s:%s %s\n", Dim, label, Reset, value)
}

// Progress prints a progress indicator.
func Progress(current, total int, label string) {
	fmt.Printf("\r  %s[%d/%d]%s %s", Cyan, current, total, Reset, label)
	if current == total {
		fmt.Println()
	}
}

// Divider prints a horizontal line.
func Divider() {
	fmt.Printf("%s%s%s\n", Dim, strings.Repeat("─", 60), Reset)
}

// ScoreLine prints an audit score colored by its grade band.
func ScoreLine(score int, grade string) {
	color := Red
	switch {
	case score >= 90:
		color = Green
	case score >= 75:
		color = Cyan
	case score >= 50:
		color = Yellow
	}
	fmt.Printf("  %sScore:%s %s%d/100%s (%s)\n", Dim, Reset, color+Bold, score, Reset, grade)
}

// Banner prints the welcome box with the given version.
func Banner(version string) {
	fmt.Println()
	fmt.Printf("  %s╭─────────────────────────────────╮%s\n", Dim, Reset)
	fmt.Printf("  %s│%s  webmend %s%-23s%s%s│%s\n", Dim, Reset, Bold, "v"+version, Reset, Dim, Reset)
	fmt.Printf("  %s│%s  TypeScript project maintenance %s│%s\n", Dim, Reset, Dim, Reset)
	fmt.Printf("  %s╰─────────────────────────────────╯%s\n", Dim, Reset)
	fmt.Println()
}

// ToolStatusOpts holds the status of each prerequisite tool.
type ToolStatusOpts struct {
	NodeVersion string
	HasNpm      bool
	HasNpx      bool
	HasTsc      bool
	HasVite     bool // vite present in package.json dependencies
}

// ToolStatus prints tool availability.
func ToolStatus(opts ToolStatusOpts) {
	mark := func(ok bool) string {
		if ok {
			return Green + "✓" + Reset
		}
		return Red + "✗" + Reset
	}

	nodeStatus := mark(opts.NodeVersion != "")
	if opts.NodeVersion != "" {
		nodeStatus = opts.NodeVersion
	}

	fmt.Printf("  %sTools:%s node %s, npm %s, tsc %s, vite %s\n",
		Dim, Reset, nodeStatus, mark(opts.HasNpm), mark(opts.HasTsc), mark(opts.HasVite))

	missing := opts.NodeVersion == "" || !opts.HasNpm || !opts.HasTsc
	if missing {
		fmt.Printf("  %sInstall node and run npm install before fixing or checking.%s\n", Dim, Reset)
	}
	fmt.Println()
}
