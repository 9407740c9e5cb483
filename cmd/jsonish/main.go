// Command jsonish parses noisy LLM-shaped text against a JSON Schema or
// YAML Schema document and prints the recovered value alongside its
// coercion report.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	jsonish "github.com/K-Mistele/jsonish-sub001"
	"github.com/K-Mistele/jsonish-sub001/coerce"
	"github.com/K-Mistele/jsonish-sub001/schema"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var schemaPath string
	var streaming bool
	var noMarkdown bool

	cmd := &cobra.Command{
		Use:   "jsonish [input-file]",
		Short: "Extract a typed value from noisy LLM text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			node, err := loadSchema(schemaPath)
			if err != nil {
				return err
			}

			var opts []jsonish.Option
			if streaming {
				opts = append(opts, jsonish.WithStreaming())
			}
			if noMarkdown {
				opts = append(opts, jsonish.WithoutMarkdown())
			}

			value, report, err := jsonish.Parse(input, node, opts...)
			printReport(cmd.OutOrStdout(), value, report, err)
			if err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "path to a JSON or YAML Schema document (required)")
	cmd.Flags().BoolVar(&streaming, "streaming", false, "treat input as an incomplete, in-progress stream")
	cmd.Flags().BoolVar(&noMarkdown, "no-markdown", false, "disable markdown fence extraction")
	cmd.MarkFlagRequired("schema")

	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return string(b), nil
}

func loadSchema(path string) (schema.Node, error) {
	if path == "" {
		return nil, fmt.Errorf("--schema is required")
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".yaml") || strings.EqualFold(filepath.Ext(path), ".yml") {
		return schema.CompileYAMLSchema(doc)
	}
	return schema.CompileJSONSchema(doc)
}

func printReport(w io.Writer, value any, report *coerce.Report, err error) {
	encoded, marshalErr := json.MarshalIndent(value, "", "  ")
	if marshalErr == nil && err == nil {
		fmt.Fprintln(w, string(encoded))
	}

	scoreColor := color.New(color.FgGreen)
	if report != nil && !report.Valid {
		scoreColor = color.New(color.FgRed)
	}
	if report != nil {
		scoreColor.Fprintf(w, "score=%d valid=%v\n", report.Score, report.Valid)
		if len(report.Flags) > 0 {
			names := make([]string, len(report.Flags))
			for i, f := range report.Flags {
				names[i] = f.String()
			}
			fmt.Fprintln(w, "flags:", strings.Join(names, ", "))
		}
		if !report.Valid {
			fmt.Fprintln(w, report.Message)
		}
	}
}
