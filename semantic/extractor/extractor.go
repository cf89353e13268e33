// Package extractor implements the semantic event extractor: a push-pull
// state machine that reconstructs a nested scope hierarchy, resolves
// hoisting, and matches references to declarations while a caller drives it
// through a pre-order walk of a JS/TS syntax tree.
package extractor

import (
	"github.com/lexiscope/lexiscope/semantic/event"
	"github.com/lexiscope/lexiscope/semantic/tsquery"
)

// Extractor is a single-threaded, synchronous state machine. It owns its
// own event queue, scope stack, and symbol table; nothing is shared across
// instances. Feed it enter/leave calls in the pre-order of a syntax tree and
// drain Pop until it returns false after the walk ends.
type Extractor struct {
	// stash is the FIFO queue of events produced so far but not yet popped.
	stash []event.Event

	// scopes is the stack of open scopes, outermost first.
	scopes []*scope

	// scopeCount is the next scope id to assign.
	scopeCount int

	// bindings is the flat "currently visible" symbol table: for each
	// bindingName, the range of the declaration presently shadowing all
	// others. Scopes record what they inserted (scope.bindings) and what
	// they hid (scope.shadowed) so this map can be kept in sync on scope
	// close without a map-per-scope.
	bindings map[bindingName]event.TextRange

	// infers holds `infer T` type parameter nodes seen before the
	// conditional-true scope they belong to has opened.
	infers []tsquery.Node
}

// New constructs an empty extractor.
func New() *Extractor {
	return &Extractor{
		bindings: make(map[bindingName]event.TextRange),
	}
}

// Pop returns the next queued event, if any.
func (e *Extractor) Pop() (event.Event, bool) {
	if len(e.stash) == 0 {
		return nil, false
	}
	ev := e.stash[0]
	e.stash = e.stash[1:]
	return ev, true
}

func (e *Extractor) emit(ev event.Event) {
	e.stash = append(e.stash, ev)
}

func (e *Extractor) currentScope() *scope {
	// The outermost scope is pushed by the root JS_MODULE/JS_SCRIPT enter
	// and is never popped by a well-formed caller walk; an empty stack here
	// (which panics on the index below) means the caller pushed a reference
	// or binding node before entering any scope-introducing node, which is a
	// malformed walk, not malformed source (see §7).
	return e.scopes[len(e.scopes)-1]
}

// Enter feeds a pre-order "enter node" signal. See the package doc and
// the specification's §4.1 for the full dispatch table.
func (e *Extractor) Enter(n tsquery.Node) {
	switch n.Kind() {
	case tsquery.KindJSIdentifierBinding, tsquery.KindTSIdentifierBinding, tsquery.KindTSTypeParameterName:
		e.enterIdentifierBinding(n)

	case tsquery.KindJSReferenceIdentifier, tsquery.KindJSXReferenceIdentifier, tsquery.KindJSIdentifierAssignment:
		e.enterIdentifierUsage(n)

	case tsquery.KindJSModule, tsquery.KindJSScript:
		e.pushScope(n.Range(), noHoist, false)

	case tsquery.KindJSFunctionDeclaration,
		tsquery.KindJSFunctionExpression,
		tsquery.KindJSArrowFunctionExpression,
		tsquery.KindJSConstructorClassMember,
		tsquery.KindJSMethodClassMember,
		tsquery.KindJSGetterClassMember,
		tsquery.KindJSSetterClassMember,
		tsquery.KindJSMethodObjectMember,
		tsquery.KindJSGetterObjectMember,
		tsquery.KindJSSetterObjectMember:
		e.pushScope(n.Range(), noHoist, true)

	case tsquery.KindJSFunctionExportDefaultDeclaration,
		tsquery.KindJSClassDeclaration,
		tsquery.KindJSClassExportDefaultDeclaration,
		tsquery.KindJSClassExpression,
		tsquery.KindJSFunctionBody,
		tsquery.KindJSStaticInitBlock,
		tsquery.KindTSModuleDeclaration,
		tsquery.KindTSExternalModuleDeclaration,
		tsquery.KindTSInterfaceDeclaration,
		tsquery.KindTSEnumDeclaration,
		tsquery.KindTSTypeAliasDeclaration,
		tsquery.KindTSDeclareFunctionDeclaration,
		tsquery.KindTSDeclareFunctionExportDefaultDeclaration:
		e.pushScope(n.Range(), noHoist, false)

	case tsquery.KindJSBlockStatement,
		tsquery.KindJSForStatement,
		tsquery.KindJSForOfStatement,
		tsquery.KindJSForInStatement,
		tsquery.KindJSSwitchStatement,
		tsquery.KindJSCatchClause:
		e.pushScope(n.Range(), hoistToParent, false)

	default:
		// Any TS type node not already matched above: the conditional-true
		// branch and the function-type parameter scope are detected by
		// predicate rather than by kind, mirroring biome's AnyTsType
		// fallback arm.
		if n.InConditionalTrueType() {
			e.pushConditionalTrueScope(n)
		} else if n.IsTSFunctionType() {
			e.pushScope(n.Range(), noHoist, false)
		}
	}
}

// Leave feeds a pre-order "leave node" signal.
func (e *Extractor) Leave(n tsquery.Node) {
	switch n.Kind() {
	case tsquery.KindJSModule, tsquery.KindJSScript,
		tsquery.KindJSFunctionDeclaration,
		tsquery.KindJSFunctionExportDefaultDeclaration,
		tsquery.KindJSFunctionExpression,
		tsquery.KindJSArrowFunctionExpression,
		tsquery.KindJSClassDeclaration,
		tsquery.KindJSClassExportDefaultDeclaration,
		tsquery.KindJSClassExpression,
		tsquery.KindJSConstructorClassMember,
		tsquery.KindJSMethodClassMember,
		tsquery.KindJSGetterClassMember,
		tsquery.KindJSSetterClassMember,
		tsquery.KindJSMethodObjectMember,
		tsquery.KindJSGetterObjectMember,
		tsquery.KindJSSetterObjectMember,
		tsquery.KindJSFunctionBody,
		tsquery.KindJSBlockStatement,
		tsquery.KindJSForStatement,
		tsquery.KindJSForOfStatement,
		tsquery.KindJSForInStatement,
		tsquery.KindJSSwitchStatement,
		tsquery.KindJSCatchClause,
		tsquery.KindJSStaticInitBlock,
		tsquery.KindTSDeclareFunctionDeclaration,
		tsquery.KindTSDeclareFunctionExportDefaultDeclaration,
		tsquery.KindTSInterfaceDeclaration,
		tsquery.KindTSEnumDeclaration,
		tsquery.KindTSTypeAliasDeclaration,
		tsquery.KindTSModuleDeclaration,
		tsquery.KindTSExternalModuleDeclaration:
		e.popScope(n.Range())

	case tsquery.KindJSIdentifierBinding, tsquery.KindTSIdentifierBinding, tsquery.KindTSTypeParameterName,
		tsquery.KindJSReferenceIdentifier, tsquery.KindJSXReferenceIdentifier, tsquery.KindJSIdentifierAssignment:
		// Enter handled these as bindings or usages and opened no scope.

	default:
		if n.InConditionalTrueType() || n.IsTSFunctionType() {
			e.popScope(n.Range())
		}
	}
}

func (e *Extractor) enterIdentifierBinding(n tsquery.Node) {
	tok, ok := n.NameToken()
	if !ok {
		// Malformed tree: silently skip per §7.
		return
	}
	name, nameRange := tok.Text, tok.Range

	var hoistedScopeID *int
	isExported := false

	if decl, hasDecl := n.Declaration(); hasDecl {
		isExported = decl.IsExported()
		switch decl.DeclarationKind() {
		case tsquery.DeclVarDeclarator:
			if decl.IsVarDeclarator() {
				hoistedScopeID = e.scopeIndexToHoistDeclarations(0)
			}
			e.pushBinding(hoistedScopeID, valueName(name), nameRange)

		case tsquery.DeclLetConstDeclarator:
			e.pushBinding(nil, valueName(name), nameRange)

		case tsquery.DeclFunctionDeclaration:
			hoistedScopeID = e.scopeIndexToHoistDeclarations(1)
			e.pushBinding(hoistedScopeID, valueName(name), nameRange)

		case tsquery.DeclFunctionExpression, tsquery.DeclClassExpression:
			e.pushBinding(nil, valueName(name), nameRange)
			e.pushBinding(nil, typeName(name), nameRange)

		case tsquery.DeclClassDeclaration, tsquery.DeclEnumDeclaration:
			// These declarations open their own scope before the name
			// binding is visited; the binding belongs to that scope's
			// parent.
			hoistedScopeID = e.parentOfCurrentScope()
			e.pushBinding(hoistedScopeID, valueName(name), nameRange)
			e.pushBinding(hoistedScopeID, typeName(name), nameRange)

		case tsquery.DeclInterfaceDeclaration, tsquery.DeclTypeAliasDeclaration:
			hoistedScopeID = e.parentOfCurrentScope()
			e.pushBinding(hoistedScopeID, typeName(name), nameRange)

		case tsquery.DeclTSModuleDeclaration:
			hoistedScopeID = e.parentOfCurrentScope()
			e.pushBinding(hoistedScopeID, valueName(name), nameRange)

		case tsquery.DeclTSMappedType, tsquery.DeclTSTypeParameter:
			e.pushBinding(nil, typeName(name), nameRange)

		case tsquery.DeclImportDefault, tsquery.DeclImportNamespace, tsquery.DeclTSImportEquals:
			if decl.HasTypeToken() {
				e.pushBinding(nil, typeName(name), nameRange)
			} else {
				e.pushBinding(nil, valueName(name), nameRange)
				e.pushBinding(nil, typeName(name), nameRange)
			}

		case tsquery.DeclNamedImportSpecifier:
			if decl.ImportsOnlyTypes() {
				e.pushBinding(nil, typeName(name), nameRange)
			} else {
				e.pushBinding(nil, valueName(name), nameRange)
				e.pushBinding(nil, typeName(name), nameRange)
			}

		case tsquery.DeclParameter:
			e.pushBinding(nil, valueName(name), nameRange)

		case tsquery.DeclInferType:
			// Delay the declaration: its scope is the conditional type's
			// true branch, which has not opened yet.
			e.infers = append(e.infers, n)
			return

		default:
			// Bogus declaration: best-effort Value binding at the
			// current scope.
			e.pushBinding(nil, valueName(name), nameRange)
		}
	} else {
		// Identifier inside a bogus node.
		e.pushBinding(nil, valueName(name), nameRange)
	}

	scopeID := e.currentScope().scopeID
	e.emit(event.DeclarationFound{NameToken: tok, ScopeID: scopeID, HoistedScopeID: hoistedScopeID})
	if isExported {
		e.emit(event.Exported{Range_: n.Range()})
	}
}

func (e *Extractor) enterIdentifierUsage(n tsquery.Node) {
	tok, ok := n.ValueToken()
	if !ok {
		return
	}
	rng := n.Range()
	name := tok.Text

	switch n.Kind() {
	case tsquery.KindJSReferenceIdentifier:
		if parent, hasParent := n.Parent(); hasParent && parent.Kind() == tsquery.KindJSExportNamedSpecifier {
			if parent.ExportsOnlyTypes() {
				e.pushReference(typeName(name), reference{kind: refExportType, rng: rng})
			} else {
				e.pushReference(valueName(name), reference{kind: refExport, rng: rng})
				e.pushReference(typeName(name), reference{kind: refExport, rng: rng})
			}
			return
		}
		if gpKind, hasGP := n.GrandParentKind(); hasGP &&
			(gpKind == tsquery.KindJSExportDefaultExpressionClause || gpKind == tsquery.KindTSExportAssignmentClause) {
			e.pushReference(valueName(name), reference{kind: refExport, rng: rng})
			e.pushReference(typeName(name), reference{kind: refExport, rng: rng})
			return
		}
		if name == "this" {
			// `this` in a typeof position is a syntactic false positive.
			return
		}
		ancestorKind, found := n.AncestorKindSkipping(1, func(k tsquery.Kind) bool {
			return k != tsquery.KindTSQualifiedName
		})
		switch {
		case found && (ancestorKind == tsquery.KindTSReferenceType || ancestorKind == tsquery.KindTSNameWithTypeArguments):
			e.pushReference(typeName(name), reference{kind: refRead, rng: rng})
		case found && ancestorKind == tsquery.KindTSImportTypeQualifier:
			// `import().X` — drop the qualifier reference.
		default:
			e.pushReference(valueName(name), reference{kind: refRead, rng: rng})
		}

	case tsquery.KindJSXReferenceIdentifier:
		e.pushReference(valueName(name), reference{kind: refRead, rng: rng})

	case tsquery.KindJSIdentifierAssignment:
		e.pushReference(valueName(name), reference{kind: refWrite, rng: rng})
	}
}

func (e *Extractor) pushConditionalTrueScope(n tsquery.Node) {
	e.pushScope(n.Range(), noHoist, false)

	infers := e.infers
	e.infers = nil
	for _, infer := range infers {
		tok, ok := infer.NameToken()
		if !ok {
			continue
		}
		e.pushBinding(nil, typeName(tok.Text), tok.Range)
		scopeID := e.currentScope().scopeID
		e.emit(event.DeclarationFound{NameToken: tok, ScopeID: scopeID})
	}
}

func (e *Extractor) pushScope(rng event.TextRange, h hoisting, isClosure bool) {
	id := e.scopeCount
	e.scopeCount++

	var parentID *int
	if len(e.scopes) > 0 {
		p := e.currentScope().scopeID
		parentID = &p
	}
	e.emit(event.ScopeStarted{Range_: rng, ScopeID: id, ParentScopeID: parentID, IsClosure: isClosure})
	e.scopes = append(e.scopes, newScope(id, h))
}

// popScope closes the innermost scope: resolve pending references against
// known bindings (promoting the rest outward, or reporting them unresolved
// at the outermost scope), uninstall this scope's bindings, restore what it
// shadowed, then emit ScopeEnded. See §4.3.
func (e *Extractor) popScope(rng event.TextRange) {
	n := len(e.scopes)
	s := e.scopes[n-1]
	e.scopes = e.scopes[:n-1]
	scopeID := s.scopeID

	for _, name := range s.refOrder {
		refs := s.references[name]
		if declaredAt, ok := e.bindings[name]; ok {
			e.resolveReferences(refs, declaredAt, scopeID)
		} else if len(e.scopes) > 0 {
			e.scopes[len(e.scopes)-1].promoteReferences(name, refs)
		} else {
			e.reportUnresolved(name, refs)
		}
	}

	for _, b := range s.bindings {
		delete(e.bindings, b)
	}
	for _, sh := range s.shadowed {
		e.bindings[sh.name] = sh.rng
	}

	e.emit(event.ScopeEnded{Range_: rng, ScopeID: scopeID})
}

func (e *Extractor) resolveReferences(refs []reference, declaredAt event.TextRange, scopeID int) {
	for _, ref := range refs {
		declBefore := declaredAt.Start < ref.rng.Start
		switch ref.kind {
		case refExport, refExportType:
			e.emit(event.Exported{Range_: declaredAt})
			if declBefore {
				e.emit(event.Read{Range_: ref.rng, DeclaredAt: declaredAt, ScopeID: scopeID})
			} else {
				e.emit(event.HoistedRead{Range_: ref.rng, DeclaredAt: declaredAt, ScopeID: scopeID})
			}
		case refRead:
			if declBefore {
				e.emit(event.Read{Range_: ref.rng, DeclaredAt: declaredAt, ScopeID: scopeID})
			} else {
				e.emit(event.HoistedRead{Range_: ref.rng, DeclaredAt: declaredAt, ScopeID: scopeID})
			}
		case refWrite:
			if declBefore {
				e.emit(event.Write{Range_: ref.rng, DeclaredAt: declaredAt, ScopeID: scopeID})
			} else {
				e.emit(event.HoistedWrite{Range_: ref.rng, DeclaredAt: declaredAt, ScopeID: scopeID})
			}
		}
	}
}

func (e *Extractor) reportUnresolved(name bindingName, refs []reference) {
	hasDual := e.hasDualBinding(name)
	for _, ref := range refs {
		if hasDual && ref.isExport() {
			// An export can export either namespace; the dual binding
			// covers it. Per §9's open question this fallback is
			// deliberately export-only and not extended to Read/Write.
			continue
		}
		e.emit(event.UnresolvedReference{IsRead: !ref.isWrite(), Range_: ref.rng})
	}
}

func (e *Extractor) hasDualBinding(name bindingName) bool {
	_, ok := e.bindings[name.dual()]
	return ok
}

// scopeIndexToHoistDeclarations finds the scope that owns a hoisted
// declaration: walking outward from the current scope, skipping `skip`
// scopes, the first scope whose policy is noHoist. Returns nil if that
// scope is the current scope (no hoisting needed).
func (e *Extractor) scopeIndexToHoistDeclarations(skip int) *int {
	for i := len(e.scopes) - 1 - skip; i >= 0; i-- {
		if e.scopes[i].hoisting == noHoist {
			if e.scopes[i].scopeID == e.currentScope().scopeID {
				return nil
			}
			id := e.scopes[i].scopeID
			return &id
		}
	}
	return nil
}

// parentOfCurrentScope returns the scope id of the scope directly
// enclosing the current one — used for declarations (class, interface,
// enum, type alias, module) whose own scope has already been opened by the
// time their name binding is visited.
func (e *Extractor) parentOfCurrentScope() *int {
	if len(e.scopes) < 2 {
		return nil
	}
	id := e.scopes[len(e.scopes)-2].scopeID
	return &id
}

// pushBinding records name as visible starting now, in hoistedScopeID if
// given or the current scope otherwise, shadowing (and remembering for
// restoration) whatever that name previously resolved to.
func (e *Extractor) pushBinding(hoistedScopeID *int, name bindingName, nameRange event.TextRange) {
	targetID := e.currentScope().scopeID
	if hoistedScopeID != nil {
		targetID = *hoistedScopeID
	}

	var target *scope
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if e.scopes[i].scopeID == targetID {
			target = e.scopes[i]
			break
		}
	}
	if target == nil {
		// A malformed caller walk (or hoisting into a scope that was
		// already popped); nothing sane to do.
		return
	}

	if prior, existed := e.bindings[name]; existed {
		target.addShadow(name, prior)
	}
	e.bindings[name] = nameRange
	target.addBinding(name)
}

func (e *Extractor) pushReference(name bindingName, ref reference) {
	e.currentScope().addReference(name, ref)
}
