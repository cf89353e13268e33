package tsquery

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/lexiscope/lexiscope/semantic/event"
)

// Grammar selects which tree-sitter language a TSNode was parsed with. The
// same node-type string means different things across grammars (e.g. only
// the typescript/tsx grammars emit "type_alias_declaration"), so the
// grammar travels with every node.
type Grammar int

const (
	GrammarJavaScript Grammar = iota
	GrammarTypeScript
	GrammarTSX
)

// LanguageFor returns the go-tree-sitter Language for a grammar, grounded on
// inspector/jsx/inspector.go's javascript.GetLanguage() usage.
func LanguageFor(g Grammar) *sitter.Language {
	switch g {
	case GrammarTypeScript:
		return typescript.GetLanguage()
	case GrammarTSX:
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// GrammarForExtension picks a grammar the way inspector.Factory.GetInspector
// picks an Inspector implementation by file extension.
func GrammarForExtension(ext string) Grammar {
	switch ext {
	case ".ts":
		return GrammarTypeScript
	case ".tsx":
		return GrammarTSX
	default:
		return GrammarJavaScript
	}
}

// TSNode wraps a *sitter.Node and implements Node.
type TSNode struct {
	n       *sitter.Node
	src     []byte
	grammar Grammar
}

// WrapNode adapts a tree-sitter node parsed with the given grammar into a
// tsquery.Node.
func WrapNode(n *sitter.Node, src []byte, grammar Grammar) Node {
	if n == nil {
		return nil
	}
	return TSNode{n: n, src: src, grammar: grammar}
}

func (t TSNode) Range() event.TextRange {
	return event.TextRange{Start: t.n.StartByte(), End: t.n.EndByte()}
}

func (t TSNode) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(t.src)
}

func (t TSNode) wrap(n *sitter.Node) (Node, bool) {
	if n == nil {
		return nil, false
	}
	return TSNode{n: n, src: t.src, grammar: t.grammar}, true
}

func (t TSNode) token(n *sitter.Node) (event.Token, bool) {
	if n == nil {
		return event.Token{}, false
	}
	return event.Token{
		Text:  t.text(n),
		Range: event.TextRange{Start: n.StartByte(), End: n.EndByte()},
	}, true
}

func (t TSNode) Kind() Kind {
	typ := t.n.Type()
	isTS := t.grammar == GrammarTypeScript || t.grammar == GrammarTSX
	switch typ {
	case "identifier", "shorthand_property_identifier_pattern":
		if t.isTypeParameterName() {
			return KindTSTypeParameterName
		}
		if isTS && t.isTSBindingPosition() {
			return KindTSIdentifierBinding
		}
		return KindJSIdentifierBinding
	case "type_identifier":
		return KindTSTypeParameterName
	case "identifier_reference", "shorthand_property_identifier":
		return KindJSReferenceIdentifier
	case "jsx_identifier":
		return KindJSXReferenceIdentifier

	case "program":
		return KindJSModule
	case "statement_block":
		if t.isFunctionBody() {
			return KindJSFunctionBody
		}
		return KindJSBlockStatement
	case "function_declaration", "generator_function_declaration":
		return KindJSFunctionDeclaration
	case "function", "function_expression", "generator_function":
		return KindJSFunctionExpression
	case "arrow_function":
		return KindJSArrowFunctionExpression
	case "method_definition":
		switch t.memberKeyword() {
		case "get":
			return KindJSGetterClassMember
		case "set":
			return KindJSSetterClassMember
		case "constructor":
			return KindJSConstructorClassMember
		default:
			return KindJSMethodClassMember
		}
	case "method": // object literal methods/getters/setters
		return KindJSMethodObjectMember
	case "class_declaration":
		return KindJSClassDeclaration
	case "class", "class_expression":
		return KindJSClassExpression
	case "class_static_block":
		return KindJSStaticInitBlock
	case "for_statement":
		return KindJSForStatement
	case "for_in_statement":
		if t.forInOperator() == "of" {
			return KindJSForOfStatement
		}
		return KindJSForInStatement
	case "switch_statement":
		return KindJSSwitchStatement
	case "catch_clause":
		return KindJSCatchClause

	case "interface_declaration":
		return KindTSInterfaceDeclaration
	case "enum_declaration":
		return KindTSEnumDeclaration
	case "type_alias_declaration":
		return KindTSTypeAliasDeclaration
	case "module", "internal_module":
		return KindTSModuleDeclaration
	case "ambient_declaration":
		return KindTSExternalModuleDeclaration
	case "function_type":
		return KindTSFunctionType
	case "conditional_type":
		return KindTSConditionalType
	case "type_annotation", "type_reference":
		return KindTSReferenceType
	case "generic_type":
		return KindTSNameWithTypeArguments
	case "import_type":
		return KindTSImportTypeQualifier
	case "nested_type_identifier":
		return KindTSQualifiedName
	case "export_specifier":
		return KindJSExportNamedSpecifier
	case "export_clause":
		return KindJSExportNamedSpecifier
	case "ERROR":
		return KindBogus
	}
	return KindOther
}

// isFunctionBody is a heuristic: a statement_block is a function body when
// its parent is one of the closure-introducing forms.
func (t TSNode) isFunctionBody() bool {
	p := t.n.Parent()
	if p == nil {
		return false
	}
	switch p.Type() {
	case "function_declaration", "function", "function_expression", "generator_function",
		"arrow_function", "method_definition", "generator_function_declaration":
		return true
	}
	return false
}

func (t TSNode) memberKeyword() string {
	kw := t.n.ChildByFieldName("kind")
	if kw != nil {
		return t.text(kw)
	}
	nameNode := t.n.ChildByFieldName("name")
	if nameNode != nil && t.text(nameNode) == "constructor" {
		return "constructor"
	}
	return ""
}

func (t TSNode) forInOperator() string {
	op := t.n.ChildByFieldName("operator")
	return t.text(op)
}

// isTypeParameterName reports whether this identifier sits directly under a
// type_parameter node (TsTypeParameterName in biome's terms).
func (t TSNode) isTypeParameterName() bool {
	p := t.n.Parent()
	return p != nil && p.Type() == "type_parameter"
}

// isTSBindingPosition approximates TsIdentifierBinding: an identifier that
// is the name of a TS-only declaration form (interface, type alias, enum
// member, import-equals) rather than a plain JS identifier.
func (t TSNode) isTSBindingPosition() bool {
	p := t.n.Parent()
	if p == nil {
		return false
	}
	switch p.Type() {
	case "interface_declaration", "type_alias_declaration", "import_equals_declaration":
		return p.ChildByFieldName("name") == t.n
	}
	return false
}

func (t TSNode) NameToken() (event.Token, bool) {
	return t.token(t.n)
}

func (t TSNode) ValueToken() (event.Token, bool) {
	return t.token(t.n)
}

// Declaration climbs to the node describing the declaration owning this
// binding identifier, mirroring AnyJsIdentifierBinding::declaration().
func (t TSNode) Declaration() (Node, bool) {
	p := t.n.Parent()
	if p == nil {
		return nil, false
	}
	switch p.Type() {
	case "variable_declarator":
		// climb past the declarator to the variable/lexical declaration
		// so IsVarDeclarator/IsExported can see the `var`/`let`/`const`
		// keyword and any export wrapper.
		gp := p.Parent()
		if gp != nil {
			return t.wrap(gp)
		}
		return t.wrap(p)
	case "infer_type":
		return t.wrap(p)
	case "type_parameter", "required_parameter", "optional_parameter", "rest_pattern",
		"formal_parameters", "index_signature", "catch_clause",
		"import_specifier", "namespace_import", "import_clause",
		"function_declaration", "class_declaration", "enum_declaration",
		"interface_declaration", "type_alias_declaration", "module",
		"internal_module", "import_equals_declaration", "mapped_type_clause",
		"arrow_function":
		return t.wrap(p)
	case "ERROR":
		return nil, false
	}
	return t.wrap(p)
}

func (t TSNode) DeclarationKind() DeclarationKind {
	switch t.n.Type() {
	case "variable_declaration":
		return DeclVarDeclarator
	case "lexical_declaration":
		return DeclLetConstDeclarator
	case "function_declaration", "generator_function_declaration":
		return DeclFunctionDeclaration
	case "arrow_function", "function", "function_expression":
		return DeclFunctionExpression
	case "class": // class expression
		return DeclClassExpression
	case "class_declaration":
		return DeclClassDeclaration
	case "enum_declaration":
		return DeclEnumDeclaration
	case "interface_declaration":
		return DeclInterfaceDeclaration
	case "type_alias_declaration":
		return DeclTypeAliasDeclaration
	case "module", "internal_module":
		return DeclTSModuleDeclaration
	case "mapped_type_clause":
		return DeclTSMappedType
	case "type_parameter":
		return DeclTSTypeParameter
	case "import_clause":
		if t.n.ChildByFieldName("default") != nil {
			return DeclImportDefault
		}
		return DeclImportNamespace
	case "namespace_import":
		return DeclImportNamespace
	case "import_equals_declaration":
		return DeclTSImportEquals
	case "import_specifier":
		return DeclNamedImportSpecifier
	case "required_parameter", "optional_parameter", "rest_pattern",
		"formal_parameters", "index_signature", "catch_clause":
		return DeclParameter
	case "infer_type":
		return DeclInferType
	case "ERROR":
		return DeclBogus
	}
	return DeclUnknown
}

func (t TSNode) IsExported() bool {
	for p := t.n; p != nil; p = p.Parent() {
		if p.Type() == "export_statement" {
			return true
		}
		// export only wraps the statement directly; don't climb past a
		// statement_block boundary.
		switch p.Type() {
		case "program", "statement_block":
			return false
		}
	}
	return false
}

func (t TSNode) IsVarDeclarator() bool {
	return t.n.Type() == "variable_declaration"
}

func (t TSNode) HasTypeToken() bool {
	if t.n.ChildByFieldName("type") != nil {
		return true
	}
	for i := 0; i < int(t.n.ChildCount()); i++ {
		c := t.n.Child(i)
		if c != nil && c.Type() == "type" {
			return true
		}
	}
	return false
}

func (t TSNode) ImportsOnlyTypes() bool {
	return t.HasTypeToken()
}

func (t TSNode) ExportsOnlyTypes() bool {
	return t.HasTypeToken()
}

func (t TSNode) Parent() (Node, bool) {
	return t.wrap(t.n.Parent())
}

func (t TSNode) GrandParentKind() (Kind, bool) {
	p := t.n.Parent()
	if p == nil {
		return KindOther, false
	}
	gp := p.Parent()
	if gp == nil {
		return KindOther, false
	}
	n, ok := t.wrap(gp)
	if !ok {
		return KindOther, false
	}
	return n.Kind(), true
}

func (t TSNode) AncestorKindSkipping(skip int, stopAt func(Kind) bool) (Kind, bool) {
	cur := t.n
	for i := 0; i < skip && cur != nil; i++ {
		cur = cur.Parent()
	}
	for cur != nil {
		n, ok := t.wrap(cur)
		if !ok {
			return KindOther, false
		}
		k := n.Kind()
		if stopAt(k) {
			return k, true
		}
		cur = cur.Parent()
	}
	return KindOther, false
}

func (t TSNode) InConditionalTrueType() bool {
	p := t.n.Parent()
	if p == nil || p.Type() != "conditional_type" {
		return false
	}
	return p.ChildByFieldName("consequence") == t.n
}

func (t TSNode) IsTSFunctionType() bool {
	return t.n.Type() == "function_type"
}

func (t TSNode) Children() []Node {
	count := int(t.n.ChildCount())
	children := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		c := t.n.Child(i)
		if c == nil {
			continue
		}
		if n, ok := t.wrap(c); ok {
			children = append(children, n)
		}
	}
	return children
}
