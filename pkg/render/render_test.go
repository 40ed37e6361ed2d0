package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zondalab/go-windreport/pkg/template"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()

	doc := template.MustNew("informe")
	if err := reg.Register(doc); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	got, err := reg.Get("informe")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != doc {
		t.Fatal("Get returned a different document")
	}
}

func TestRegistryDuplicate(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(template.MustNew("informe"))

	err := reg.Register(template.MustNew("informe"))
	if err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistryGetMissing(t *testing.T) {
	_, err := NewRegistry().Get("ausente")
	if err == nil {
		t.Fatal("expected error for missing document")
	}
}

func TestRegistryListSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"cartel", "edificio", "cubierta_aislada"} {
		reg.MustRegister(template.MustNew(name))
	}

	want := []string{"cartel", "cubierta_aislada", "edificio"}
	if diff := cmp.Diff(want, reg.List()); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}

	if !reg.Has("cartel") || reg.Has("otro") {
		t.Fatal("Has returned wrong membership")
	}
}

func TestAssemblerRendersLayoutInOrder(t *testing.T) {
	doc := template.MustNew("doc")
	doc.Append(
		template.Literal("# Informe\n\n"),
		template.BlockRef("cuerpo"),
		template.Literal("\nfin\n"),
	)
	doc.MustDefine("cuerpo", func(ctx *template.Context, super template.SuperFunc) (string, error) {
		return "contenido", nil
	})

	out, err := NewAssembler().Render(doc, template.NewContext())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != "# Informe\n\ncontenido\nfin\n" {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestAssemblerDeterministic(t *testing.T) {
	doc := template.MustNew("doc")
	doc.Append(template.BlockRef("a"), template.Literal("|"), template.BlockRef("b"))
	doc.MustDefine("a", func(ctx *template.Context, super template.SuperFunc) (string, error) {
		return "uno", nil
	})
	doc.MustDefine("b", func(ctx *template.Context, super template.SuperFunc) (string, error) {
		return "dos", nil
	})

	assembler := NewAssembler()
	ctx := template.NewContext()

	first, err := assembler.Render(doc, ctx)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	second, err := assembler.Render(doc, ctx)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if first != second {
		t.Fatalf("repeated renders differ:\n%q\n%q", first, second)
	}
}

// A failing block aborts the whole render: no partial output.
func TestAssemblerAtomicFailure(t *testing.T) {
	cause := errors.New("cuerpo roto")
	doc := template.MustNew("doc")
	doc.Append(
		template.Literal("antes "),
		template.BlockRef("cuerpo"),
	)
	doc.MustDefine("cuerpo", func(ctx *template.Context, super template.SuperFunc) (string, error) {
		return "", cause
	})

	out, err := NewAssembler().Render(doc, template.NewContext())
	if err == nil {
		t.Fatal("expected render to fail")
	}
	if out != "" {
		t.Fatalf("failed render must produce no output, got %q", out)
	}

	var blockErr *template.BlockError
	if !errors.As(err, &blockErr) {
		t.Fatalf("expected *template.BlockError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not preserved: %v", err)
	}
}

func TestAssemblerNilDocument(t *testing.T) {
	_, err := NewAssembler().Render(nil, template.NewContext())
	var tmplErr *template.TemplateError
	if !errors.As(err, &tmplErr) {
		t.Fatalf("expected *template.TemplateError, got %v", err)
	}
}

func TestAssemblerInheritedLayout(t *testing.T) {
	parent := template.MustNew("padre")
	parent.Append(template.BlockRef("titulo"))
	parent.MustDefine("titulo", func(ctx *template.Context, super template.SuperFunc) (string, error) {
		return "base", nil
	})

	child := template.MustNew("hijo", template.Extends(parent))
	child.MustDefine("titulo", func(ctx *template.Context, super template.SuperFunc) (string, error) {
		return "derivado", nil
	})

	out, err := NewAssembler().Render(child, template.NewContext())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if out != "derivado" {
		t.Fatalf("child override must win, got %q", out)
	}
}

func TestFrontMatterRender(t *testing.T) {
	fm := FrontMatter{
		Title: "Estudio de cargas de viento: Edificio",
		Lang:  "es-AR",
	}
	out, err := fm.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.HasPrefix(out, "---\n") || !strings.HasSuffix(out, "---\n") {
		t.Fatalf("front matter must be fenced:\n%s", out)
	}
	for _, want := range []string{"title: 'Estudio de cargas de viento: Edificio'", "lang: es-AR"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "subtitle") {
		t.Fatalf("empty subtitle must be omitted:\n%s", out)
	}
}
