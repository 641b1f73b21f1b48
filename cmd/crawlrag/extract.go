package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/crawlrag"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Schema)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read schema file %q\n", c.Schema)
		return err
	}

	var schema crawlrag.ExtractionSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid schema JSON in %q: %s\n", c.Schema, err)
		return crawlrag.Errorf(crawlrag.EINVALID, "invalid schema JSON: %v", err)
	}

	result, err := deps.Tools.ExtractStructured(deps.Ctx, c.URL, schema)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawlrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result)
	return nil
}

// Run executes the extract-llm command.
func (c *ExtractLLMCmd) Run(deps *Dependencies) error {
	var schemaJSON []byte
	if c.Schema != "" {
		data, err := os.ReadFile(c.Schema)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot read schema file %q\n", c.Schema)
			return err
		}
		schemaJSON = data
	}

	result, err := deps.Tools.ExtractWithLLM(deps.Ctx, c.URL, c.Instruction, schemaJSON)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawlrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result)
	return nil
}
