package main

import (
	"fmt"

	"github.com/fwojciec/crawlrag"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	report, err := deps.Tools.SearchContent(deps.Ctx, c.Query, c.Limit, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawlrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report)
	return nil
}

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Tools.Ask(deps.Ctx, c.Question)
	if err != nil {
		if crawlrag.ErrorCode(err) == crawlrag.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "error: no crawled content matched the question. Use 'crawlrag crawl' to index pages first.")
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawlrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
