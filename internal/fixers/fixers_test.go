package fixers

import (
	"strings"
	"testing"
)

func TestReactImport_AddsMissingHooksToBraces(t *testing.T) {
	src := "import { useState } from 'react';\n\nfunction App() {\n  const [a] = useState(0);\n  useEffect(() => {}, []);\n}\n"
	out, notes := ReactImport(src)
	if !strings.Contains(out, "useEffect") || !strings.Contains(out, "useState") {
		t.Fatalf("missing hook not added:\n%s", out)
	}
	if strings.Count(out, "from 'react'") != 1 {
		t.Errorf("expected a single react import:\n%s", out)
	}
	if len(notes) == 0 {
		t.Error("expected a note for the added hook")
	}
}

func TestReactImport_WidensDefaultImport(t *testing.T) {
	src := "import React from 'react';\n\nconst [n, setN] = useState(0);\n"
	out, _ := ReactImport(src)
	if !strings.Contains(out, "import React, { useState } from 'react';") {
		t.Fatalf("default import not widened:\n%s", out)
	}
	if strings.Contains(out, "import React from 'react';") {
		t.Errorf("old default import left behind:\n%s", out)
	}
}

func TestReactImport_PrependsWhenNoImport(t *testing.T) {
	src := "export function Counter() {\n  const [n] = useState(0);\n  const r = useRef(null);\n}\n"
	out, _ := ReactImport(src)
	if !strings.HasPrefix(out, "import { useState, useRef } from 'react';\n") {
		t.Fatalf("named import not prepended:\n%s", out)
	}
}

func TestReactImport_NoHooksNoChange(t *testing.T) {
	src := "const x = 1;\n"
	out, notes := ReactImport(src)
	if out != src || notes != nil {
		t.Errorf("file without hooks should be untouched")
	}
}

func TestReactImport_NamespaceImportLeftAlone(t *testing.T) {
	src := "import * as React from 'react';\nconst [n] = useState(0);\n"
	out, _ := ReactImport(src)
	if out != src {
		t.Errorf("namespace import already covers hooks:\n%s", out)
	}
}

func TestUnusedReactImport_RemovesDefault(t *testing.T) {
	src := "import React from 'react';\n\nexport const App = () => <div>hi</div>;\n"
	out, notes := UnusedReactImport(src)
	if strings.Contains(out, "import React") {
		t.Fatalf("unused React import kept:\n%s", out)
	}
	if len(notes) == 0 {
		t.Error("expected a removal note")
	}
}

func TestUnusedReactImport_KeepsWhenReferenced(t *testing.T) {
	src := "import React from 'react';\n\nclass A extends React.Component {}\n"
	out, _ := UnusedReactImport(src)
	if out != src {
		t.Errorf("React is referenced, import must stay:\n%s", out)
	}
}

func TestUnusedReactImport_DropsDefaultKeepsNamed(t *testing.T) {
	src := "import React, { useState } from 'react';\n\nconst [n] = useState(0);\n"
	out, _ := UnusedReactImport(src)
	if !strings.Contains(out, "import { useState } from 'react'") {
		t.Fatalf("named bindings lost:\n%s", out)
	}
	if strings.Contains(out, "React,") {
		t.Errorf("default binding kept:\n%s", out)
	}
}

func TestConsoleStrip(t *testing.T) {
	src := "const a = 1;\nconsole.log('debug', a);\nconsole.error('keep');\n  console.log(fmtValue(a));\n"
	out, notes := ConsoleStrip(src)
	if strings.Contains(out, "console.log") {
		t.Fatalf("console.log survived:\n%s", out)
	}
	if !strings.Contains(out, "console.error('keep');") {
		t.Errorf("console.error must be kept:\n%s", out)
	}
	if len(notes) != 1 || !strings.Contains(notes[0], "2") {
		t.Errorf("expected a note counting 2 removals, got %v", notes)
	}
}

func TestConsoleStrip_InlineCallKept(t *testing.T) {
	// console.log embedded in an expression is not a whole line; leave it.
	src := "const r = list.map(x => console.log(x));\n"
	out, _ := ConsoleStrip(src)
	if out != src {
		t.Errorf("inline console.log should be untouched:\n%s", out)
	}
}

func TestDebuggerStrip(t *testing.T) {
	src := "function f() {\n  debugger;\n  return 1;\n}\n"
	out, _ := DebuggerStrip(src)
	if strings.Contains(out, "debugger") {
		t.Fatalf("debugger survived:\n%s", out)
	}
	if !strings.Contains(out, "return 1;") {
		t.Errorf("surrounding code damaged:\n%s", out)
	}
}

func TestVarToLet(t *testing.T) {
	src := "var a = 1;\n  var b = 2;\nconst variant = 'x';\n"
	out, _ := VarToLet(src)
	if !strings.Contains(out, "let a = 1;") || !strings.Contains(out, "  let b = 2;") {
		t.Fatalf("var not rewritten:\n%s", out)
	}
	if !strings.Contains(out, "const variant = 'x';") {
		t.Errorf("identifier containing 'var' damaged:\n%s", out)
	}
}

func TestImportExtension(t *testing.T) {
	src := "import { a } from './utils.ts';\nimport b from '../b.tsx';\nimport lib from 'lib.js';\nconst c = import('./lazy.js');\n"
	out, _ := ImportExtension(src)
	if !strings.Contains(out, "from './utils';") || !strings.Contains(out, "from '../b';") {
		t.Fatalf("relative extensions kept:\n%s", out)
	}
	if !strings.Contains(out, "from 'lib.js';") {
		t.Errorf("bare specifier must be untouched:\n%s", out)
	}
	if !strings.Contains(out, "import('./lazy')") {
		t.Errorf("dynamic import extension kept:\n%s", out)
	}
}

func TestImportQuotes(t *testing.T) {
	src := "import { a } from \"./a\";\nexport * from \"./b\";\nimport \"./styles.css\";\nconst m = import(\"./lazy\");\nconst s = \"not an import\";\n"
	out, _ := ImportQuotes(src)
	if !strings.Contains(out, "from './a';") || !strings.Contains(out, "from './b';") {
		t.Fatalf("double quotes kept on imports:\n%s", out)
	}
	if !strings.Contains(out, "import './styles.css';") {
		t.Errorf("side-effect import not normalized:\n%s", out)
	}
	if !strings.Contains(out, "import('./lazy')") {
		t.Errorf("dynamic import not normalized:\n%s", out)
	}
	if !strings.Contains(out, "const s = \"not an import\";") {
		t.Errorf("non-import string damaged:\n%s", out)
	}
}

func TestImportQuotes_ExportedLiteralUntouched(t *testing.T) {
	// A double-quoted value on an export line is not a module specifier;
	// rewriting it would break the apostrophe inside.
	src := "export const QUERY = \"SELECT 'x' FROM t\";\nexport const LABEL = \"plain\";\n"
	out, notes := ImportQuotes(src)
	if out != src || notes != nil {
		t.Fatalf("export literals must be untouched:\n%s", out)
	}
}

func TestImportQuotes_SpecifierWithApostropheUntouched(t *testing.T) {
	src := "import x from \"./it's-here\";\n"
	out, _ := ImportQuotes(src)
	if out != src {
		t.Errorf("specifier containing an apostrophe must be left alone:\n%s", out)
	}
}

func TestExplicitAny(t *testing.T) {
	src := "const a: Array<any> = [];\nconst b: any[] = [];\nfunction f(x: any) {}\n"
	out, notes := ExplicitAny(src)
	if strings.Contains(out, "Array<any>") || strings.Contains(out, "any[]") {
		t.Fatalf("mechanical any forms kept:\n%s", out)
	}
	if !strings.Contains(out, "x: any") {
		t.Errorf("bare any must be left for the audit:\n%s", out)
	}
	joined := strings.Join(notes, "; ")
	if !strings.Contains(joined, "remain") {
		t.Errorf("expected a note about remaining any annotations, got %v", notes)
	}
}

func TestChain_CombinesNotesWithPrefix(t *testing.T) {
	fs, err := Lookup([]string{"no-var", "debugger-strip"})
	if err != nil {
		t.Fatal(err)
	}
	chain := Chain(fs)

	out, notes := chain("var a = 1;\ndebugger;\n")
	if strings.Contains(out, "var ") || strings.Contains(out, "debugger") {
		t.Fatalf("chain missed a fixer:\n%s", out)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %v", notes)
	}
	if !strings.HasPrefix(notes[0], "no-var: ") || !strings.HasPrefix(notes[1], "debugger-strip: ") {
		t.Errorf("notes missing fixer name prefix: %v", notes)
	}
}

func TestLookup_UnknownName(t *testing.T) {
	if _, err := Lookup([]string{"no-var", "nonsense"}); err == nil {
		t.Fatal("expected error for unknown fixer name")
	}
}
