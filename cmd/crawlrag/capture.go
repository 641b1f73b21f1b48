package main

import (
	"fmt"

	"github.com/fwojciec/crawlrag"
)

// Run executes the screenshot command.
func (c *ScreenshotCmd) Run(deps *Dependencies) error {
	dataURI, err := deps.Tools.Screenshot(deps.Ctx, c.URL, c.FullPage)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawlrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, dataURI)
	return nil
}

// Run executes the pdf command.
func (c *PDFCmd) Run(deps *Dependencies) error {
	dataURI, err := deps.Tools.PDF(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawlrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, dataURI)
	return nil
}
