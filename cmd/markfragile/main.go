// Command markfragile is a vet-style driver for the markfragile analyzer:
//
//	markfragile -clusters clusters.yaml ./...
//	go vet -vettool=$(which markfragile) -markfragile.clusters=clusters.yaml ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/fragile/internal/markpass"
)

func main() {
	singlechecker.Main(markpass.Analyzer)
}
