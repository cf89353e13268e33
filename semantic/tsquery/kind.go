// Package tsquery is the syntax-layer boundary the extractor depends on.
//
// It exposes the small set of predicates biome_js_semantic's events.rs
// requires from the parser: node kind, text range, name/value tokens, the
// owning declaration's kind, and a handful of tree-shape checks (export
// modifiers, conditional-true-type position, and so on). The concrete
// implementation walks a github.com/smacker/go-tree-sitter syntax tree
// parsed with the javascript or typescript/tsx grammar; a second,
// dependency-free implementation backs the extractor's own unit tests.
package tsquery

// Kind is the closed syntax-kind enumeration the extractor switches on.
// It mirrors biome's JsSyntaxKind but only carries the members the
// extractor actually inspects.
type Kind int

const (
	KindOther Kind = iota

	// Identifier bindings.
	KindJSIdentifierBinding
	KindTSIdentifierBinding
	KindTSTypeParameterName

	// Identifier usages.
	KindJSReferenceIdentifier
	KindJSXReferenceIdentifier
	KindJSIdentifierAssignment

	// Program roots.
	KindJSModule
	KindJSScript

	// Closures.
	KindJSFunctionDeclaration
	KindJSFunctionExpression
	KindJSArrowFunctionExpression
	KindJSConstructorClassMember
	KindJSMethodClassMember
	KindJSGetterClassMember
	KindJSSetterClassMember
	KindJSMethodObjectMember
	KindJSGetterObjectMember
	KindJSSetterObjectMember

	// Non-closure NoHoist scopes.
	KindJSFunctionExportDefaultDeclaration
	KindJSClassDeclaration
	KindJSClassExportDefaultDeclaration
	KindJSClassExpression
	KindJSFunctionBody
	KindJSStaticInitBlock
	KindTSModuleDeclaration
	KindTSExternalModuleDeclaration
	KindTSInterfaceDeclaration
	KindTSEnumDeclaration
	KindTSTypeAliasDeclaration
	KindTSDeclareFunctionDeclaration
	KindTSDeclareFunctionExportDefaultDeclaration

	// HoistToParent scopes.
	KindJSBlockStatement
	KindJSForStatement
	KindJSForOfStatement
	KindJSForInStatement
	KindJSSwitchStatement
	KindJSCatchClause

	// TS type-level scopes, detected via predicate rather than kind alone.
	KindTSFunctionType
	KindTSConditionalType

	// Reference-classification ancestor kinds.
	KindTSReferenceType
	KindTSNameWithTypeArguments
	KindTSImportTypeQualifier
	KindTSQualifiedName
	KindJSExportNamedSpecifier
	KindJSExportDefaultExpressionClause
	KindTSExportAssignmentClause

	// Fallback for malformed subtrees.
	KindBogus
)

// DeclarationKind classifies the declaration that owns an identifier
// binding, driving the hoisting table in §4.1 of the specification.
type DeclarationKind int

const (
	DeclUnknown DeclarationKind = iota
	DeclVarDeclarator
	DeclLetConstDeclarator
	DeclFunctionDeclaration  // incl. default-export and declare-function forms
	DeclFunctionExpression
	DeclClassExpression
	DeclClassDeclaration // incl. default-export form
	DeclEnumDeclaration
	DeclInterfaceDeclaration
	DeclTypeAliasDeclaration
	DeclTSModuleDeclaration
	DeclTSMappedType
	DeclTSTypeParameter
	DeclImportDefault
	DeclImportNamespace
	DeclTSImportEquals
	DeclNamedImportSpecifier
	DeclParameter // formal/rest/index-signature/property param, catch param
	DeclInferType
	DeclBogus
)
