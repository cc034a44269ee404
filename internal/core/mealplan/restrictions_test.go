package mealplan

import (
	"reflect"
	"testing"
)

func TestParseRestrictions(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		wantDiet         string
		wantIntolerances []string
	}{
		{"empty", "", "", nil},
		{"vegetarian", "I'm vegetarian", "vegetarian", nil},
		{"vegan", "strictly VEGAN please", "vegan", nil},
		{"gluten sets diet and intolerance", "no gluten", "gluten free", []string{"gluten"}},
		{"keto", "on a keto diet", "ketogenic", nil},
		{
			"vegetarian wins over keto by priority",
			"vegetarian, sometimes keto",
			"vegetarian",
			nil,
		},
		{
			"multiple intolerances all included",
			"allergic to dairy and soy, no eggs",
			"dairy free",
			[]string{"dairy", "soy", "egg"},
		},
		{"tree nut from nut keyword", "nut allergy", "", []string{"tree nut"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diet, intolerances := ParseRestrictions(tt.text)
			if diet != tt.wantDiet {
				t.Errorf("diet = %q, want %q", diet, tt.wantDiet)
			}
			if !reflect.DeepEqual(intolerances, tt.wantIntolerances) {
				t.Errorf("intolerances = %v, want %v", intolerances, tt.wantIntolerances)
			}
		})
	}
}

func TestParseLikedFoods(t *testing.T) {
	t.Run("splits and trims", func(t *testing.T) {
		got := ParseLikedFoods("chicken, rice , broccoli")
		want := []string{"chicken", "rice", "broccoli"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("caps at three terms", func(t *testing.T) {
		got := ParseLikedFoods("a,b,c,d,e")
		if len(got) != 3 {
			t.Errorf("expected 3 terms, got %v", got)
		}
	})

	t.Run("skips empty terms", func(t *testing.T) {
		got := ParseLikedFoods(" , ,tofu")
		want := []string{"tofu"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		if got := ParseLikedFoods(""); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}
