package embed

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Format selects the language of the generated file.
type Format string

const (
	// FormatCPP produces a C++ header with an inline raw string constant.
	FormatCPP Format = "cpp"
	// FormatGo produces a Go source file with a quoted string constant.
	FormatGo Format = "go"
)

// DefaultPackage is the package clause of FormatGo output.
const DefaultPackage = "embedded"

// DefaultNamespace returns the namespace path of FormatCPP output,
// outermost first.
func DefaultNamespace() []string {
	return []string{"rufus", "embedded"}
}

var (
	tagPattern   = regexp.MustCompile(`^[A-Za-z0-9_]{1,7}$`)
	identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Options controls the shape of the generated file. Zero values are replaced
// by their defaults in New.
type Options struct {
	Format Format

	// Tag prefixes the fingerprint in the raw string delimiter. C++ limits
	// delimiters to 16 characters, which leaves room for 7.
	Tag string

	// Namespace is the C++ namespace path, outermost first.
	Namespace []string

	// Package is the Go package clause.
	Package string

	Logger *zap.Logger
}

// DefaultOptions returns the options that produce a rufus::embedded C++
// header.
func DefaultOptions() Options {
	return Options{
		Format:    FormatCPP,
		Tag:       DefaultTag,
		Namespace: DefaultNamespace(),
		Package:   DefaultPackage,
		Logger:    zap.NewNop(),
	}
}

// An Embedder writes files declaring the contents of other files as string
// constants. It holds no mutable state and may be shared.
type Embedder struct {
	opts Options
	log  *zap.Logger
}

// New validates opts and returns an Embedder using them. Validation errors
// wrap ErrInvalidOptions.
func New(opts Options) (*Embedder, error) {
	def := DefaultOptions()
	if opts.Format == "" {
		opts.Format = def.Format
	}
	if opts.Tag == "" {
		opts.Tag = def.Tag
	}
	if len(opts.Namespace) == 0 {
		opts.Namespace = def.Namespace
	} else {
		opts.Namespace = append([]string(nil), opts.Namespace...)
	}
	if opts.Package == "" {
		opts.Package = def.Package
	}
	if opts.Logger == nil {
		opts.Logger = def.Logger
	}

	switch opts.Format {
	case FormatCPP, FormatGo:
	default:
		return nil, errors.Wrapf(ErrInvalidOptions, "unknown format %q", opts.Format)
	}

	if !tagPattern.MatchString(opts.Tag) {
		return nil, errors.Wrapf(ErrInvalidOptions, "tag %q must be 1 to 7 letters, digits or underscores", opts.Tag)
	}

	for _, ns := range opts.Namespace {
		if !identPattern.MatchString(ns) {
			return nil, errors.Wrapf(ErrInvalidOptions, "namespace %q is not an identifier", ns)
		}
	}

	if !identPattern.MatchString(opts.Package) {
		return nil, errors.Wrapf(ErrInvalidOptions, "package %q is not an identifier", opts.Package)
	}

	return &Embedder{opts: opts, log: opts.Logger}, nil
}

// Embed writes a C++ header to output declaring rufus::embedded::<name> with
// the contents of input.
func Embed(input, output, name string) error {
	e, err := New(DefaultOptions())
	if err != nil {
		return err
	}

	return e.Embed(input, output, name)
}

// Embed reads input in full, then creates or truncates output and writes the
// generated file declaring a constant called name. The name is used as is.
//
// A failure to read returns an *Error of KindRead, and output is left
// untouched. A failure to write returns an *Error of KindWrite, and output
// may be left truncated.
func (e *Embedder) Embed(input, output, name string) error {
	content, err := readInput(input)
	if err != nil {
		return err
	}

	e.log.Debug("read input", zap.String("path", input), zap.Int("bytes", len(content)))

	data, err := e.Generate(input, name, content)
	if err != nil {
		return err
	}

	if err := writeOutput(output, data); err != nil {
		return err
	}

	e.log.Debug("wrote output", zap.String("path", output), zap.Int("bytes", len(data)))

	return nil
}

// Generate renders the file that Embed would write, naming source as its
// provenance. It performs no I/O.
func (e *Embedder) Generate(source, name string, content []byte) ([]byte, error) {
	delim, rejected := delimiter(e.opts.Tag, content, fingerprint)
	if rejected > 0 {
		e.log.Debug("fingerprint found in content, rehashed", zap.Int("rejected", rejected))
	}
	e.log.Debug("computed delimiter", zap.String("delimiter", delim))

	h := header{
		Source:    source,
		Name:      name,
		Delimiter: delim,
		Package:   e.opts.Package,
	}

	buf := bytes.Buffer{}
	var err error
	switch e.opts.Format {
	case FormatGo:
		h.Quoted = strconv.Quote(string(content))
		err = goTmpl.Execute(&buf, h)
	default:
		h.Content = string(content)
		h.Namespace = e.opts.Namespace
		h.Closing = reversed(e.opts.Namespace)
		err = cppTmpl.Execute(&buf, h)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "executing %s template", e.opts.Format)
	}

	return buf.Bytes(), nil
}

func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, readError(path, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, readError(path, err)
	}

	if !utf8.Valid(content) {
		return nil, readError(path, errors.Errorf("%s: not valid UTF-8 text", path))
	}

	return content, nil
}

func writeOutput(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return writeError(path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = writeError(path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return writeError(path, err)
	}

	return nil
}

func reversed(s []string) []string {
	r := make([]string, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}

	return r
}
