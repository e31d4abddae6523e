package codemod

import (
	"strings"
	"testing"
)

func TestReactFC_TypedProps(t *testing.T) {
	src := "import { FC } from 'react';\n\nconst Card: FC<CardProps> = ({ title, body }) => {\n  return <div>{title}</div>;\n};\n"
	out, notes := ReactFC(src)
	if !strings.Contains(out, "const Card = ({ title, body }: CardProps) =>") {
		t.Fatalf("FC annotation not rewritten:\n%s", out)
	}
	if strings.Contains(out, "FC") {
		t.Errorf("FC import should be removed once unused:\n%s", out)
	}
	if len(notes) < 2 {
		t.Errorf("expected rewrite and import-removal notes, got %v", notes)
	}
}

func TestReactFC_QualifiedAndEmpty(t *testing.T) {
	src := "const App: React.FC = () => <div />;\n"
	out, _ := ReactFC(src)
	if !strings.Contains(out, "const App = () =>") {
		t.Fatalf("parameterless React.FC not dropped:\n%s", out)
	}
}

func TestReactFC_NoAnnotationNoChange(t *testing.T) {
	src := "const App = () => <div />;\n"
	out, notes := ReactFC(src)
	if out != src || notes != nil {
		t.Errorf("file without FC should be untouched")
	}
}

func TestRouterV6_FullMigration(t *testing.T) {
	src := `import { useHistory, Redirect } from 'react-router-dom';

function Nav() {
  const history = useHistory();
  history.push('/home');
  history.replace('/login');
  history.goBack();
  return <Redirect to="/404" />;
}
`
	out, notes := RouterV6(src)
	checks := []string{
		"const navigate = useNavigate()",
		"navigate('/home')",
		"navigate('/login')",
		"navigate(-1)",
		"<Navigate to=",
		"import { useNavigate, Navigate } from 'react-router-dom'",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "useHistory") || strings.Contains(out, "Redirect") {
		t.Errorf("v5 API left behind:\n%s", out)
	}
	joined := strings.Join(notes, "; ")
	if !strings.Contains(joined, "replace: true") {
		t.Errorf("history.replace note should warn about { replace: true }, got %v", notes)
	}
}

func TestRouterV6_NoRouterUsageNoChange(t *testing.T) {
	src := "const history = loadHistory();\nhistory.push(item);\n"
	out, notes := RouterV6(src)
	if out != src || notes != nil {
		t.Errorf("file without useHistory/Redirect must be untouched:\n%s", out)
	}
}

func TestViteEnv(t *testing.T) {
	src := "const url = process.env.REACT_APP_API_URL;\nif (process.env.NODE_ENV === 'production') {}\n"
	out, _ := ViteEnv(src)
	if !strings.Contains(out, "import.meta.env.VITE_API_URL") {
		t.Fatalf("REACT_APP var not migrated:\n%s", out)
	}
	if !strings.Contains(out, "import.meta.env.MODE === 'production'") {
		t.Fatalf("NODE_ENV not migrated:\n%s", out)
	}
	if strings.Contains(out, "process.env") {
		t.Errorf("process.env reference left behind:\n%s", out)
	}
}

func TestLookup(t *testing.T) {
	mods, err := Lookup([]string{"react-fc", "vite-env"})
	if err != nil {
		t.Fatal(err)
	}
	if len(mods) != 2 || mods[0].Name != "react-fc" || mods[1].Name != "vite-env" {
		t.Errorf("unexpected lookup result: %v", mods)
	}

	if _, err := Lookup([]string{"unknown-mod"}); err == nil {
		t.Fatal("expected error for unknown codemod")
	}
}
