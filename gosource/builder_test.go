package gosource

import (
	"context"
	"testing"

	"github.com/refgraph/refgraph/model"
)

const docsitePkg = "github.com/refgraph/refgraph/gosource/testdata/docsite"
const docsiteFQN = `"` + docsitePkg + `".`

func buildDocsite(t *testing.T, opts Options) *model.Project {
	t.Helper()
	if len(opts.Packages) == 0 {
		opts.Packages = []string{docsitePkg}
	}
	project, err := Build(context.Background(), opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return project
}

func TestBuild_AliasUseSite(t *testing.T) {
	project := buildDocsite(t, Options{})

	latest := project.Lookup(docsiteFQN + "Latest")
	if latest == nil {
		t.Fatal("Latest not found")
	}
	ref, ok := latest.Type.(*model.ReferenceType)
	if !ok {
		t.Fatalf("Latest.Type = %T, want *model.ReferenceType", latest.Type)
	}
	if ref.Name != "Alias" {
		t.Errorf("Name = %q, want the surface name %q", ref.Name, "Alias")
	}
	if ref.Target != docsiteFQN+"RealClass" {
		t.Errorf("Target = %q, want %q", ref.Target, docsiteFQN+"RealClass")
	}
}

func TestBuild_DirectUseSite(t *testing.T) {
	project := buildDocsite(t, Options{})

	current := project.Lookup(docsiteFQN + "Current")
	if current == nil {
		t.Fatal("Current not found")
	}
	ref, ok := current.Type.(*model.ReferenceType)
	if !ok {
		t.Fatalf("Current.Type = %T, want *model.ReferenceType", current.Type)
	}
	if ref.Name != "RealClass" {
		t.Errorf("Name = %q, want %q", ref.Name, "RealClass")
	}
	if ref.Target != docsiteFQN+"RealClass" {
		t.Errorf("Target = %q, want %q", ref.Target, docsiteFQN+"RealClass")
	}
}

func TestBuild_PrimitiveAliasUseSite(t *testing.T) {
	project := buildDocsite(t, Options{})

	count := project.Lookup(docsiteFQN + "Count")
	if count == nil {
		t.Fatal("Count not found")
	}
	ref, ok := count.Type.(*model.ReferenceType)
	if !ok {
		t.Fatalf("Count.Type = %T, want *model.ReferenceType", count.Type)
	}
	if ref.Name != "MyNumber" {
		t.Errorf("Name = %q, want %q", ref.Name, "MyNumber")
	}
	// The checker collapsed MyNumber into a primitive, so the target
	// deferred to the name-based resolution pass, which found the
	// alias declaration.
	if ref.Target != docsiteFQN+"MyNumber" {
		t.Errorf("Target = %q, want %q", ref.Target, docsiteFQN+"MyNumber")
	}
}

func TestBuild_ChainedAlias(t *testing.T) {
	project := buildDocsite(t, Options{})

	chained := project.Lookup(docsiteFQN + "Chained")
	if chained == nil {
		t.Fatal("Chained not found")
	}
	if chained.Kind != model.DeclAlias {
		t.Errorf("Kind = %v, want alias", chained.Kind)
	}
	ref, ok := chained.Type.(*model.ReferenceType)
	if !ok {
		t.Fatalf("Chained.Type = %T, want *model.ReferenceType", chained.Type)
	}
	if ref.Target != docsiteFQN+"RealClass" {
		t.Errorf("Target = %q, want %q (through both alias hops)", ref.Target, docsiteFQN+"RealClass")
	}
}

func TestBuild_DeclarationKinds(t *testing.T) {
	project := buildDocsite(t, Options{})

	kinds := map[string]model.DeclKind{
		"RealClass": model.DeclStruct,
		"Alias":     model.DeclAlias,
		"MyNumber":  model.DeclAlias,
		"Score":     model.DeclType,
		"Latest":    model.DeclVar,
		"MaxScore":  model.DeclConst,
		"Lookup":    model.DeclFunc,
	}
	for name, want := range kinds {
		d := project.Lookup(docsiteFQN + name)
		if d == nil {
			t.Errorf("%s not found", name)
			continue
		}
		if d.Kind != want {
			t.Errorf("%s.Kind = %v, want %v", name, d.Kind, want)
		}
	}
}

func TestBuild_StructMembers(t *testing.T) {
	project := buildDocsite(t, Options{})

	rc := project.Lookup(docsiteFQN + "RealClass")
	if rc == nil {
		t.Fatal("RealClass not found")
	}
	if len(rc.Members) != 3 {
		t.Fatalf("len(Members) = %d, want 3", len(rc.Members))
	}

	byName := map[string]model.Member{}
	for _, m := range rc.Members {
		byName[m.Name] = m
	}

	if id, ok := byName["ID"]; !ok {
		t.Error("ID member missing")
	} else if id.Type.Kind() != model.KindIntrinsic {
		t.Errorf("ID.Type.Kind() = %v, want Intrinsic", id.Type.Kind())
	}
	if tags, ok := byName["Tags"]; !ok {
		t.Error("Tags member missing")
	} else if tags.Type.Kind() != model.KindArray {
		t.Errorf("Tags.Type.Kind() = %v, want Array", tags.Type.Kind())
	}
	if meta, ok := byName["Meta"]; !ok {
		t.Error("Meta member missing")
	} else if meta.Type.Kind() != model.KindMap {
		t.Errorf("Meta.Type.Kind() = %v, want Map", meta.Type.Kind())
	}
}

func TestBuild_GenericInstantiationArguments(t *testing.T) {
	project := buildDocsite(t, Options{})

	intBox := project.Lookup(docsiteFQN + "IntBox")
	if intBox == nil {
		t.Fatal("IntBox not found")
	}
	ref, ok := intBox.Type.(*model.ReferenceType)
	if !ok {
		t.Fatalf("IntBox.Type = %T, want *model.ReferenceType", intBox.Type)
	}
	if ref.Target != docsiteFQN+"Box" {
		t.Errorf("Target = %q, want %q", ref.Target, docsiteFQN+"Box")
	}
	if len(ref.TypeArguments) != 1 {
		t.Fatalf("len(TypeArguments) = %d, want 1", len(ref.TypeArguments))
	}
	arg, ok := ref.TypeArguments[0].(*model.IntrinsicType)
	if !ok {
		t.Fatalf("TypeArguments[0] = %T, want *model.IntrinsicType", ref.TypeArguments[0])
	}
	if arg.Name != "int" {
		t.Errorf("argument = %q, want %q", arg.Name, "int")
	}
}

func TestBuild_InstantiationArgumentsFromResolvedType(t *testing.T) {
	project := buildDocsite(t, Options{})

	// BoxVar is annotated with the bare alias IntBox; the int argument
	// exists only on the checker's resolved type.
	boxVar := project.Lookup(docsiteFQN + "BoxVar")
	if boxVar == nil {
		t.Fatal("BoxVar not found")
	}
	ref, ok := boxVar.Type.(*model.ReferenceType)
	if !ok {
		t.Fatalf("BoxVar.Type = %T, want *model.ReferenceType", boxVar.Type)
	}
	if ref.Target != docsiteFQN+"Box" {
		t.Errorf("Target = %q, want %q", ref.Target, docsiteFQN+"Box")
	}
	if len(ref.TypeArguments) != 1 {
		t.Fatalf("len(TypeArguments) = %d, want 1", len(ref.TypeArguments))
	}
	arg, ok := ref.TypeArguments[0].(*model.IntrinsicType)
	if !ok {
		t.Fatalf("TypeArguments[0] = %T, want *model.IntrinsicType", ref.TypeArguments[0])
	}
	if arg.Name != "int" {
		t.Errorf("argument = %q, want %q", arg.Name, "int")
	}
}

func TestBuild_WarnsOnUnsupportedTypes(t *testing.T) {
	project := buildDocsite(t, Options{})

	events := project.Lookup(docsiteFQN + "Events")
	if events == nil {
		t.Fatal("Events not found")
	}
	if _, ok := events.Type.(*model.UnknownType); !ok {
		t.Fatalf("Events.Type = %T, want *model.UnknownType", events.Type)
	}

	var found *model.Warning
	for i, w := range project.Warnings {
		if w.Declaration == docsiteFQN+"Events" {
			found = &project.Warnings[i]
			break
		}
	}
	if found == nil {
		t.Fatalf("no warning attributed to Events; warnings = %+v", project.Warnings)
	}
	if found.Code != WarnUnsupportedType {
		t.Errorf("Code = %q, want %q", found.Code, WarnUnsupportedType)
	}
}

func TestBuild_RootsMaterializeReferencedTypes(t *testing.T) {
	project := buildDocsite(t, Options{Roots: []string{"Latest"}})

	if project.Lookup(docsiteFQN+"Latest") == nil {
		t.Fatal("Latest not found")
	}
	// RealClass was not a root, but the alias target must still
	// materialize through the deferred-reflection queue.
	rc := project.Lookup(docsiteFQN + "RealClass")
	if rc == nil {
		t.Fatal("RealClass not materialized from deferred reflections")
	}
	if rc.Kind != model.DeclStruct {
		t.Errorf("RealClass.Kind = %v, want struct", rc.Kind)
	}
	if len(rc.Members) == 0 {
		t.Error("materialized RealClass has no members; expected full extraction from syntax")
	}
	if project.Lookup(docsiteFQN+"Score") != nil {
		t.Error("Score extracted despite not being a root or referenced")
	}
}

func TestBuild_FuncSignature(t *testing.T) {
	project := buildDocsite(t, Options{})

	lookup := project.Lookup(docsiteFQN + "Lookup")
	if lookup == nil {
		t.Fatal("Lookup not found")
	}
	if lookup.Signature == nil {
		t.Fatal("Lookup has no signature")
	}
	if len(lookup.Signature.Params) != 1 {
		t.Fatalf("len(Params) = %d, want 1", len(lookup.Signature.Params))
	}
	if lookup.Signature.Params[0].Name != "id" {
		t.Errorf("param name = %q, want %q", lookup.Signature.Params[0].Name, "id")
	}
	if len(lookup.Signature.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(lookup.Signature.Results))
	}
	ref, ok := lookup.Signature.Results[0].(*model.ReferenceType)
	if !ok {
		t.Fatalf("Results[0] = %T, want *model.ReferenceType", lookup.Signature.Results[0])
	}
	if ref.Target != docsiteFQN+"RealClass" {
		t.Errorf("Results[0].Target = %q, want %q", ref.Target, docsiteFQN+"RealClass")
	}
	if lookup.Documentation.Deprecated == nil {
		t.Error("Lookup should carry a deprecation marker")
	}
}

func TestBuild_UnexportedExcludedByDefault(t *testing.T) {
	project := buildDocsite(t, Options{})
	if project.Lookup(docsiteFQN+"hidden") != nil {
		t.Error("unexported type extracted without IncludeUnexported")
	}

	project = buildDocsite(t, Options{IncludeUnexported: true})
	if project.Lookup(docsiteFQN+"hidden") == nil {
		t.Error("unexported type missing with IncludeUnexported")
	}
}

func TestBuild_Documentation(t *testing.T) {
	project := buildDocsite(t, Options{})

	rc := project.Lookup(docsiteFQN + "RealClass")
	if rc == nil {
		t.Fatal("RealClass not found")
	}
	if rc.Documentation.Summary == "" {
		t.Error("RealClass should have a documentation summary")
	}
	if rc.Source.File == "" || rc.Source.Line == 0 {
		t.Errorf("RealClass has no source location: %+v", rc.Source)
	}
}

func TestBuild_NoPackages(t *testing.T) {
	_, err := Build(context.Background(), Options{})
	if err == nil {
		t.Fatal("expected error for empty package list")
	}
}
