package esbuild

// Exported for white-box tests of the loaded runtime and emit memoisation.
var (
	TransformerImportSource = func(t *Transformer) string { return t.importSource }
	TransformerVersion      = func(t *Transformer) string { return t.version }
	ProgramMemoised         = (*Program).memoised
)
