package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sdnscreen/internal/screening"
	"sdnscreen/internal/screening/service"
	"sdnscreen/internal/source"
)

// screenInput is one JSONL line: a query plus an optional caller reference.
type screenInput struct {
	screening.Query
	Ref string `json:"ref,omitempty"`
}

type screenOutput struct {
	Line int    `json:"line"`
	Ref  string `json:"ref,omitempty"`
	searchOutput
}

// NewScreenCommand screens a batch of customers read as JSON lines.
func NewScreenCommand(opts *rootOptions) *cobra.Command {
	var concurrency int
	cmd := &cobra.Command{
		Use:   "screen [queries.jsonl]",
		Short: "Screen a batch of customers read as JSON lines",
		Long: `Screen a batch of customers. Each input line is a JSON query
({"id", "id_type", "country", "firstName", "lastName", "ref"}); each output line
carries the input line number, the ref and the matches, in input order.

Reads stdin when no file (or "-") is given. Every query streams the list
again, so queries run concurrently up to --concurrency.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if concurrency < 1 {
				return fmt.Errorf("--concurrency must be at least 1, got %d", concurrency)
			}
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			inputs, err := readScreenInputs(in)
			if err != nil {
				return err
			}

			svc := service.New(source.FileOpener{Path: opts.documentPath(cmd)}, opts.logger(cmd.ErrOrStderr()), nil)
			outputs := make([]screenOutput, len(inputs))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(concurrency)
			for i, input := range inputs {
				g.Go(func() error {
					result, err := svc.Search(ctx, input.Query)
					if err != nil {
						return fmt.Errorf("screen line %d: %w", input.line, err)
					}
					outputs[i] = screenOutput{Line: input.line, Ref: input.Ref, searchOutput: newSearchOutput(result.Matches)}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, out := range outputs {
				if err := enc.Encode(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of queries screened at once")
	return cmd
}

type numberedInput struct {
	screenInput
	line int
}

// readScreenInputs decodes one query per non-blank line.
func readScreenInputs(r io.Reader) ([]numberedInput, error) {
	var inputs []numberedInput
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var input screenInput
		if err := json.Unmarshal([]byte(text), &input); err != nil {
			return nil, fmt.Errorf("decode line %d: %w", line, err)
		}
		inputs = append(inputs, numberedInput{screenInput: input, line: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}
	return inputs, nil
}
