// Sevlog writes leveled log lines from the command line.
//
// Usage:
//
//	go build -o bin/sevlog ./cmd/sevlog
//	./bin/sevlog emit --level error "disk full"
//	./bin/sevlog emit --prefix Net --level warning timeout
//	./bin/sevlog levels
package main

import (
	"os"

	"github.com/schmitthub/sevlog/internal/sevlog"
)

func main() {
	os.Exit(sevlog.Main())
}
