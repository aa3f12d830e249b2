package global

import "testing"

func TestLoad_CommonModuleHasMessage(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ctx := r.Context(CommonModule)
	found := false
	for _, it := range ctx.Methods {
		if it.Name == "Message" {
			found = true
		}
	}
	if !found {
		t.Errorf("CommonModule context should include the Message method, got: %+v", ctx.Methods)
	}
}

func TestLoad_UnknownKindIsEmpty(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ctx := r.Context(ModuleKind("NotARealKind"))
	if len(ctx.Methods) != 0 || len(ctx.Attributes) != 0 || len(ctx.StandardAttributes) != 0 {
		t.Errorf("an unknown module kind should resolve to an empty Context, got %+v", ctx)
	}
}

func TestLoad_OverrideAppendsMethod(t *testing.T) {
	override := []byte(`
module_kinds:
  CommonModule:
    methods:
      - name: CustomHelper
        name_ru: МойПомощник
        is_func: true
        params: []
        env: { server: true }
`)
	r, err := Load(override)
	if err != nil {
		t.Fatalf("Load with override: %v", err)
	}
	ctx := r.Context(CommonModule)

	foundBase, foundOverride := false, false
	for _, it := range ctx.Methods {
		switch it.Name {
		case "Message":
			foundBase = true
		case "CustomHelper":
			foundOverride = true
		}
	}
	if !foundBase {
		t.Error("override should append to, not replace, the embedded base catalog")
	}
	if !foundOverride {
		t.Error("override method CustomHelper should be present in the merged context")
	}
}

func TestKindFromString_BilingualAndCaseInsensitive(t *testing.T) {
	tests := []struct {
		in   string
		want ModuleKind
	}{
		{"CommonModule", CommonModule},
		{"commonmodule", CommonModule},
		{"ОбщийМодуль", CommonModule},
		{"Форма", ClientApplicationForm},
		{"МодульОбъекта", ObjectModule},
	}
	for _, tt := range tests {
		got, ok := KindFromString(tt.in)
		if !ok {
			t.Errorf("KindFromString(%q): expected a match", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("KindFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, ok := KindFromString("NotAKind"); ok {
		t.Error("an unrecognized kind string should not match")
	}
}
