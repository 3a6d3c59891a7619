package embed

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	cppProvenance = "// Auto-generated from "
	cppDecl       = "inline const char* "

	goProvenance = "// Code generated by rufus-embed from "
	goDoNotEdit  = ". DO NOT EDIT."
	goPrint      = "Fingerprint: "
)

// An Artifact is a generated file read back into its parts.
type Artifact struct {
	Format    Format
	Source    string
	Name      string
	Delimiter string
	Content   []byte
}

// Extract parses a file written by an Embedder, in either format, and
// returns the embedded content exactly as it was read from the source file.
// Failures wrap ErrMalformed.
func Extract(data []byte) (*Artifact, error) {
	text := string(data)
	switch {
	case strings.HasPrefix(text, cppProvenance):
		return extractCPP(text)
	case strings.HasPrefix(text, goProvenance):
		return extractGo(data)
	}

	return nil, errors.Wrap(ErrMalformed, "no provenance comment")
}

func extractCPP(text string) (*Artifact, error) {
	line, rest, _ := strings.Cut(text, "\n")
	a := &Artifact{Format: FormatCPP, Source: strings.TrimPrefix(line, cppProvenance)}

	i := strings.Index(rest, cppDecl)
	if i < 0 {
		return nil, errors.Wrap(ErrMalformed, "no constant declaration")
	}
	rest = rest[i+len(cppDecl):]

	var ok bool
	a.Name, rest, ok = strings.Cut(rest, ` = R"`)
	if !ok {
		return nil, errors.Wrap(ErrMalformed, "no raw string literal")
	}

	a.Delimiter, rest, ok = strings.Cut(rest, "(\n")
	if !ok {
		return nil, errors.Wrap(ErrMalformed, "no opening delimiter")
	}

	content, _, ok := strings.Cut(rest, "\n"+string(closing(a.Delimiter)))
	if !ok {
		return nil, errors.Wrapf(ErrMalformed, "no closing delimiter %s", a.Delimiter)
	}
	a.Content = []byte(content)

	return a, nil
}

func extractGo(data []byte) (*Artifact, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", data, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "parsing go source: %v", err)
	}

	a := &Artifact{Format: FormatGo}
	if len(f.Comments) > 0 {
		first := f.Comments[0].List[0].Text
		a.Source = strings.TrimSuffix(strings.TrimPrefix(first, goProvenance), goDoNotEdit)
	}

	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST || len(gen.Specs) == 0 {
			continue
		}

		spec := gen.Specs[0].(*ast.ValueSpec)
		if len(spec.Names) != 1 || len(spec.Values) != 1 {
			continue
		}

		lit, ok := spec.Values[0].(*ast.BasicLit)
		if !ok || lit.Kind != token.STRING {
			continue
		}

		content, err := strconv.Unquote(lit.Value)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "unquoting %s: %v", spec.Names[0].Name, err)
		}

		a.Name = spec.Names[0].Name
		a.Content = []byte(content)
		if gen.Doc != nil {
			for _, c := range gen.Doc.List {
				if i := strings.Index(c.Text, goPrint); i >= 0 {
					a.Delimiter = strings.TrimSpace(c.Text[i+len(goPrint):])
				}
			}
		}

		return a, nil
	}

	return nil, errors.Wrap(ErrMalformed, "no string constant")
}
