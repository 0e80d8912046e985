package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-grocery-sync/internal/client"
	"github.com/MKhiriev/go-grocery-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	root := newRootCmd(newCLI(build, os.Stdin, os.Stdout))

	if err := root.ExecuteContext(context.Background()); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			if exit.err != nil {
				fmt.Fprintln(os.Stderr, client.RenderError(exit.err))
			}
			os.Exit(exit.code)
		}
		fmt.Fprintln(os.Stderr, client.RenderError(err))
		os.Exit(1)
	}
}
