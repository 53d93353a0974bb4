package model

import "testing"

func TestReferenceType_Resolved(t *testing.T) {
	if !NewReference("User", `"api".User`).Resolved() {
		t.Error("NewReference should be resolved")
	}
	if NewDeferredReference("User").Resolved() {
		t.Error("NewDeferredReference should not be resolved")
	}
}

func TestKind_String(t *testing.T) {
	kinds := map[Kind]string{
		KindReference: "Reference",
		KindIntrinsic: "Intrinsic",
		KindLiteral:   "Literal",
		KindArray:     "Array",
		KindMap:       "Map",
		KindUnknown:   "Unknown",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestDeclKind_String(t *testing.T) {
	if DeclAlias.String() != "alias" {
		t.Errorf("DeclAlias.String() = %q, want %q", DeclAlias.String(), "alias")
	}
	if DeclStruct.String() != "struct" {
		t.Errorf("DeclStruct.String() = %q, want %q", DeclStruct.String(), "struct")
	}
}
