package mealplan

import (
	"testing"
)

func TestInferEquipment(t *testing.T) {
	t.Run("matches vocabulary in fixed order", func(t *testing.T) {
		got := InferEquipment("Preheat the oven and use a whisk")
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d: %v", len(got), got)
		}
		if got[0].Name != "Oven" {
			t.Errorf("expected first entry Oven, got %q", got[0].Name)
		}
		if got[1].Name != "Whisk" {
			t.Errorf("expected second entry Whisk, got %q", got[1].Name)
		}
	})

	t.Run("order follows vocabulary not occurrence", func(t *testing.T) {
		// Whisk appears before oven in the text; output still leads with Oven.
		got := InferEquipment("Whisk the eggs, then move the tray to the oven")
		if len(got) < 2 {
			t.Fatalf("expected at least 2 entries, got %v", got)
		}
		if got[0].Name != "Oven" {
			t.Errorf("expected Oven first, got %q", got[0].Name)
		}
	})

	t.Run("multi-word keywords title-case each word", func(t *testing.T) {
		got := InferEquipment("place on a baking sheet and chop on the cutting board")
		want := map[string]bool{"Cutting Board": false, "Baking Sheet": false}
		for _, e := range got {
			if _, ok := want[e.Name]; ok {
				want[e.Name] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected %q in %v", name, got)
			}
		}
	})

	t.Run("matching is case-insensitive on input", func(t *testing.T) {
		got := InferEquipment("USE A BLENDER")
		if len(got) != 1 || got[0].Name != "Blender" {
			t.Errorf("expected [Blender], got %v", got)
		}
	})

	t.Run("empty instructions yield nothing", func(t *testing.T) {
		if got := InferEquipment(""); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}
