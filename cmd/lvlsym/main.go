// SPDX-License-Identifier: MIT
// Command lvlsym computes automorphism groups and canonical forms of
// vertex-colored graphs given in DIMACS format.
//
//	lvlsym aut graph.dimacs
//	lvlsym canon -o canon.dimacs graph.dimacs
//	lvlsym dot graph.dimacs
//	lvlsym catalog add --dir ./catalog graph.dimacs
package main

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("lvlsym failed")
		stop()
		os.Exit(1)
	}
}
