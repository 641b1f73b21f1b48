package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/crawlrag"
	"github.com/fwojciec/crawlrag/tools"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	report, err := deps.Tools.CrawlPage(deps.Ctx, c.URL, tools.CrawlPageOptions{
		IncludeLinks:  c.Links,
		IncludeImages: c.Images,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawlrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report)
	return nil
}

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	report, err := deps.Tools.CrawlPages(deps.Ctx, c.URLs, c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawlrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report)
	return nil
}

// Run executes the smart command.
func (c *SmartCmd) Run(deps *Dependencies) error {
	report, err := deps.Tools.SmartCrawl(deps.Ctx, c.URL, c.Query, c.MaxPages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawlrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report)
	return nil
}

// Run executes the site command.
func (c *SiteCmd) Run(deps *Dependencies) error {
	filter, err := compileFilter(c.Filter, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawlrag.ErrorMessage(err))
		return err
	}

	report, err := deps.Tools.CrawlSite(deps.Ctx, c.URL, filter, c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawlrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, report)
	return nil
}

// compileFilter builds a URLFilter from include and exclude patterns.
// Returns nil if no patterns were given.
func compileFilter(include, exclude []string) (*crawlrag.URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}

	filter := &crawlrag.URLFilter{}
	for _, p := range include {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, crawlrag.Errorf(crawlrag.EINVALID, "invalid filter pattern %q: %v", p, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, p := range exclude {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, crawlrag.Errorf(crawlrag.EINVALID, "invalid exclude pattern %q: %v", p, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return filter, nil
}
