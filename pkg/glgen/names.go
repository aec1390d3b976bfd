// Copyright 2021 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package glgen

// keywords are the identifiers reserved in the bindings language.
var keywords = map[string]bool{
	"abstract": true, "as": true, "async": true, "await": true, "become": true,
	"box": true, "break": true, "const": true, "continue": true, "crate": true,
	"do": true, "dyn": true, "else": true, "enum": true, "extern": true,
	"false": true, "final": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "macro": true,
	"match": true, "mod": true, "move": true, "mut": true, "override": true,
	"priv": true, "pub": true, "ref": true, "return": true, "self": true,
	"Self": true, "static": true, "struct": true, "super": true, "trait": true,
	"true": true, "try": true, "type": true, "typeof": true, "unsafe": true,
	"unsized": true, "use": true, "virtual": true, "where": true, "while": true,
	"yield": true,
}

// paramName guards keywords used as parameter names, so "type" becomes "type_".
func paramName(name string) string {
	for keywords[name] {
		name += "_"
	}

	return name
}
