// Package model defines the data structures shared by the extraction pipeline.
package model

// Path represents a file system path.
type Path string

// StorageClass is the linkage of a C function definition.
type StorageClass string

const (
	// StorageNone means the definition carries no storage class specifier.
	StorageNone StorageClass = "none"

	// StorageStatic marks internal linkage. Only static functions are
	// eligible targets for the dependency walk.
	StorageStatic StorageClass = "static"

	// StorageExtern marks an explicit extern specifier.
	StorageExtern StorageClass = "extern"
)

// CallSite is a single call expression inside a function body.
type CallSite struct {
	Callee string
	Line   int
	// Target is the function defined in the same translation unit that the
	// call resolves to, or nil when the callee cannot be resolved (function
	// pointers, macro indirection).
	Target *Function
}

// Function represents one function definition in a C translation unit.
type Function struct {
	Name      string
	Qualified string // scope-joined name; equals Name in C's flat namespace
	Storage   StorageClass
	StartLine int
	EndLine   int
	Calls     []CallSite
}

// Comment is one comment token, with 1-based inclusive line extent.
// A block comment is a single entry; each line of a // run is its own entry.
type Comment struct {
	StartLine int
	EndLine   int
	Text      string
}

// TranslationUnit is the parsed projection of a single C source file.
// Functions and Comments are in source order.
type TranslationUnit struct {
	Path      Path
	Functions []*Function
	Comments  []Comment
	// NodeKinds counts the AST node kinds seen during the parse, for
	// diagnostic output only.
	NodeKinds map[string]int
}
