package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/tools/imports"

	"github.com/funvibe/funalg/internal/config"
)

// Generator produces Go source wiring Bases for the containers described in
// a Config. Generated constructors call the Must form of the derivers, since
// generated wiring is statically complete.
type Generator struct {
	// modulePath is the import path of the funalg module
	// (config.DefaultModulePath for published use).
	modulePath string
}

// NewGenerator creates a new generator. An empty modulePath selects the
// published module path.
func NewGenerator(modulePath string) *Generator {
	if modulePath == "" {
		modulePath = config.DefaultModulePath
	}
	return &Generator{modulePath: modulePath}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the file name to write (e.g. "option_algebra.gen.go").
	Filename string

	// Content is the full, formatted Go source code.
	Content string
}

// Generate produces one wiring file per configured container type, in
// configuration order.
func (g *Generator) Generate(cfg *Config) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(cfg.Types))
	for i := range cfg.Types {
		f, err := g.generateType(cfg.Package, &cfg.Types[i])
		if err != nil {
			return nil, fmt.Errorf("generating wiring for %s: %w", cfg.Types[i].Name, err)
		}
		files = append(files, f)
	}
	return files, nil
}

// typeNames builds instantiated type and primitive references for one
// container.
type typeNames struct {
	pkg   string // package qualifier, e.g. "option"
	name  string // container type name, e.g. "Option"
	fixed string // fixed second parameter, "" at arity 1
}

// container renders T<elem> (or T<elem, fixed> at arity 2).
func (tn typeNames) container(elem string) string {
	if tn.fixed == "" {
		return fmt.Sprintf("%s.%s[%s]", tn.pkg, tn.name, elem)
	}
	return fmt.Sprintf("%s.%s[%s, %s]", tn.pkg, tn.name, elem, tn.fixed)
}

// prim renders a primitive instantiation, appending the fixed parameter
// last per the naming convention.
func (tn typeNames) prim(fn string, args ...string) string {
	if tn.fixed != "" {
		args = append(append([]string{}, args...), tn.fixed)
	}
	return fmt.Sprintf("%s.%s[%s]", tn.pkg, fn, strings.Join(args, ", "))
}

type wireField struct {
	Name string
	Expr string
}

type wireFunc struct {
	Comment    string
	Name       string
	ResultType string
	DeriveCall string
	BaseType   string
	Fields     []wireField
}

type fileContext struct {
	Package         string
	AlgebraImport   string
	ContainerImport string
	Funcs           []wireFunc
}

var fileTemplate = template.Must(template.New("wiring").Parse(`// Code generated by funalg. DO NOT EDIT.

package {{.Package}}

import (
	"{{.AlgebraImport}}"

	"{{.ContainerImport}}"
)
{{range .Funcs}}
// {{.Comment}}
func {{.Name}}() {{.ResultType}} {
	return {{.DeriveCall}}({{.BaseType}}{
{{- range .Fields}}
		{{.Name}}: {{.Expr}},
{{- end}}
	})
}
{{end}}`))

func (g *Generator) generateType(pkgName string, t *TypeSpec) (GeneratedFile, error) {
	tn := typeNames{pkg: t.pkgQualifier(), name: t.Name, fixed: t.Fixed}

	ctx := &fileContext{
		Package:         pkgName,
		AlgebraImport:   g.modulePath + "/pkg/algebra",
		ContainerImport: t.Import,
	}

	for _, e := range t.Elems {
		if t.hasInterface(ifaceMonad) {
			ctx.Funcs = append(ctx.Funcs, monadFunc(tn, t, e))
		}
	}
	// One alternative/foldable wiring per distinct element type a.
	seen := make(map[string]bool)
	for _, e := range t.Elems {
		if seen[e.A] {
			continue
		}
		seen[e.A] = true
		if t.hasInterface(ifaceAlternative) {
			ctx.Funcs = append(ctx.Funcs, alternativeFunc(tn, t, e.A))
		}
		if t.hasInterface(ifaceFoldable) {
			ctx.Funcs = append(ctx.Funcs, foldableFunc(tn, t, e.A))
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, ctx); err != nil {
		return GeneratedFile{}, fmt.Errorf("rendering template: %w", err)
	}

	filename := strings.ToLower(t.Name) + config.GeneratedFileSuffix
	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("formatting %s: %w", filename, err)
	}

	return GeneratedFile{Filename: filename, Content: string(formatted)}, nil
}

func monadFunc(tn typeNames, t *TypeSpec, e ElemPair) wireFunc {
	ta := tn.container(e.A)
	tb := tn.container(e.B)
	tta := tn.container(ta)
	params := []string{ta, tb, tta, e.A, e.B}

	suffix := typeSuffix(e.A)
	if e.B != e.A {
		suffix += typeSuffix(e.B)
	}
	name := t.Name + "Monad" + suffix

	iface, base, derive := "MonadInstance", "MonadBase", "MustDeriveMonad"
	if t.Arity == 2 {
		iface, base, derive = "MonadInstance2", "MonadBase2", "MustDeriveMonad2"
		params = append(params, t.Fixed)
	}
	args := strings.Join(params, ", ")

	return wireFunc{
		Comment:    fmt.Sprintf("%s derives the Monad instance for %s at elements (%s, %s).", name, t.Name, e.A, e.B),
		Name:       name,
		ResultType: fmt.Sprintf("algebra.%s[%s]", iface, args),
		DeriveCall: "algebra." + derive,
		BaseType:   fmt.Sprintf("algebra.%s[%s]", base, args),
		Fields: []wireField{
			{Name: "Return", Expr: tn.prim("Pure", e.A)},
			{Name: "Wrap", Expr: tn.prim("Pure", e.B)},
			{Name: "Bind", Expr: tn.prim("FlatMap", e.A, e.B)},
			{Name: "BindNested", Expr: tn.prim("FlatMap", ta, e.A)},
		},
	}
}

func alternativeFunc(tn typeNames, t *TypeSpec, elem string) wireFunc {
	ta := tn.container(elem)
	name := t.Name + "Alternative" + typeSuffix(elem)

	return wireFunc{
		Comment:    fmt.Sprintf("%s derives the Alternative instance for %s at element %s.", name, t.Name, elem),
		Name:       name,
		ResultType: fmt.Sprintf("algebra.AlternativeInstance[%s]", ta),
		DeriveCall: "algebra.MustDeriveAlternative",
		BaseType:   fmt.Sprintf("algebra.AlternativeBase[%s]", ta),
		Fields: []wireField{
			{Name: "OrElse", Expr: tn.prim("OrElse", elem)},
		},
	}
}

func foldableFunc(tn typeNames, t *TypeSpec, elem string) wireFunc {
	ta := tn.container(elem)
	params := []string{ta, elem, t.Acc}
	name := t.Name + "Foldable" + typeSuffix(elem)

	iface, base, derive := "FoldableInstance", "FoldableBase", "MustDeriveFoldable"
	if t.Arity == 2 {
		iface, base, derive = "FoldableInstance2", "FoldableBase2", "MustDeriveFoldable2"
		params = append(params, t.Fixed)
	}
	args := strings.Join(params, ", ")

	return wireFunc{
		Comment:    fmt.Sprintf("%s derives the Foldable instance for %s at element %s with accumulator %s.", name, t.Name, elem, t.Acc),
		Name:       name,
		ResultType: fmt.Sprintf("algebra.%s[%s]", iface, args),
		DeriveCall: "algebra." + derive,
		BaseType:   fmt.Sprintf("algebra.%s[%s]", base, args),
		Fields: []wireField{
			{Name: "FoldLeft", Expr: tn.prim("FoldLeft", elem, t.Acc)},
		},
	}
}

// typeSuffix turns a Go type expression into an exported identifier
// fragment: "int" -> "Int", "option.Option[int]" -> "OptionOptionInt",
// "[]byte" -> "Byte".
func typeSuffix(goType string) string {
	var b strings.Builder
	upper := true
	for _, r := range goType {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
