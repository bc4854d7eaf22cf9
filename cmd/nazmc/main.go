// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command nazmc drives the front end over a single source file: lexing,
// recoverable parsing, AST lowering, name resolution and NIR lowering,
// rendering every diagnostic collected along the way.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nazm-lang/nazmc/ast"
	"github.com/nazm-lang/nazmc/cst"
	"github.com/nazm-lang/nazmc/internal/intern"
	"github.com/nazm-lang/nazmc/lexer"
	"github.com/nazm-lang/nazmc/nir"
	"github.com/nazm-lang/nazmc/parser"
	"github.com/nazm-lang/nazmc/report"
	"github.com/nazm-lang/nazmc/resolve"
)

const sourceExt = ".نظم"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noColor, warningsAsErrors bool

	cmd := &cobra.Command{
		Use:           "nazmc <file." + sourceExt + ">",
		Short:         "nazm front end",
		Long:          "Lex, parse, resolve and lower a single nazm source file, reporting every diagnostic found along the way.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := run(args[0], !noColor, warningsAsErrors, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !ok {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI colors in diagnostic output")
	cmd.PersistentFlags().BoolVar(&warningsAsErrors, "warnings-as-errors", false, "treat warnings as failures for the exit code")

	return cmd
}

// run executes the full pipeline over path, writing every rendered
// diagnostic to out. It returns ok == false whenever the file should be
// treated as having failed to compile (a recoverable diagnostic was
// produced), matching the root command's 0/1 exit code policy.
func run(path string, colorize, warningsAsErrors bool, out io.Writer) (bool, error) {
	if !strings.HasSuffix(path, sourceExt) {
		return false, fmt.Errorf("الملف يجب أن ينتهي بامتداد %s: %s", sourceExt, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("تعذرت قراءة الملف %s: %w", path, err)
	}
	src := string(content)

	var diags []report.Diagnostic

	table := intern.NewTable()
	toks, _, lexErrs := lexer.Lex(src, table)
	for _, e := range lexErrs {
		diags = append(diags, report.NewLexDiagnostic(path, src, e.Span, e.Kind.String(), e.Base, e.NumKind))
	}

	cstFile := parser.Parse(toks)
	for _, e := range cst.CollectSyntaxErrors(cstFile, toks) {
		diags = append(diags, report.NewSyntaxDiagnostic(path, src, e.Span, e.What))
	}

	astFile := ast.Lower(cstFile)

	packagesToFiles := [][]int{{0}}
	files := []resolve.ParsedFile{{Path: path, Source: src, AST: astFile}}

	items, conflicts := resolve.CheckConflicts(packagesToFiles, files, table)
	diags = append(diags, conflicts...)

	if len(conflicts) == 0 {
		packages := resolve.NewPackageSet([][]intern.ID{{}})
		fileImports, importDiags := resolve.ResolveImports(packagesToFiles, files, packages, items, table)
		diags = append(diags, importDiags...)

		if len(importDiags) == 0 {
			builder := nir.NewBuilder(table, packages, packagesToFiles, files, items, fileImports)
			_, nirDiags := builder.Build()
			diags = append(diags, nirDiags...)
		}
	}

	ok := true
	for _, d := range diags {
		fmt.Fprintln(out, report.Render(d, colorize, warningsAsErrors))
		if d.Severity == report.SeverityError || (warningsAsErrors && d.Severity == report.SeverityWarning) {
			ok = false
		}
	}

	return ok, nil
}
