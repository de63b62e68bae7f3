// cmd/algexd is the standalone entry point for the §11.3 progress daemon,
// split out from cmd/algex so the daemon can be deployed and restarted
// independently of the CLI binary.
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/obslog"
	"github.com/lexiform/algex/internal/progress"
)

func main() {
	addr := ":8080"
	args := os.Args[1:]
	for i, arg := range args {
		if arg == "--addr" && i+1 < len(args) {
			addr = args[i+1]
		}
	}

	logger := obslog.New("algexd")
	srv := progress.NewServer(config.Default())

	logger.WithField("addr", addr).Info("algexd listening")
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatalf("algexd: %v", err)
	}
}
