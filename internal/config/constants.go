package config

// Interface names as they appear in descriptors, registry keys, diagnostics
// and generated code.
const (
	MonadName       = "Monad"
	AlternativeName = "Alternative"
	FoldableName    = "Foldable"
)

// Operation names used in descriptors and diagnostics. These are the field
// names of the derivers' Base dictionaries in lower camel case.
const (
	ReturnOpName     = "return"
	WrapOpName       = "wrap"
	BindOpName       = "bind"
	BindNestedOpName = "bindNested"
	OrElseOpName     = "orElse"
	FoldLeftOpName   = "foldLeft"
)

// ConfigFileName is the default generator configuration file.
const ConfigFileName = "funalg.yaml"

// GeneratedFileSuffix is the filename suffix for generator output.
const GeneratedFileSuffix = "_algebra.gen.go"

// DefaultModulePath is the import path of this project, used by the
// generator when emitting imports.
const DefaultModulePath = "github.com/funvibe/funalg"
