package logger

import (
	"log"
	"os"
)

// New returns a basic stderr logger for the admin application; swap in
// structured logging when needed.
func New() *log.Logger {
	return log.New(os.Stderr, "storefront ", log.LstdFlags)
}
