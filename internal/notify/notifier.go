package notify

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const bannerWidth = 60

// Notify prints an operator-facing alert to stdout. The output surface is
// assumed to always be available; there is no failure mode.
func Notify(message string) {
	Fprint(os.Stdout, message, time.Now())
}

func Fprint(w io.Writer, message string, now time.Time) {
	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, "\n"+banner)
	fmt.Fprintln(w, "🔔 NOTIFICATION")
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, message)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Time: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, banner+"\n")
}
