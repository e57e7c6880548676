package recommend

import (
	"testing"

	"aromaSpa/domain"
)

func TestCombineAveragesOverFullCount(t *testing.T) {
	blend, err := CombineItems([]domain.Item{testLavender(), testMint()})
	if err != nil {
		t.Fatalf("combine: %v", err)
	}

	// keys present in either input, missing values counted as 0
	if got := blend.Properties["relaxation"]; !almostEqual(got, 0.45) {
		t.Errorf("relaxation = %v, want 0.45", got)
	}
	if got := blend.Properties["sleep"]; !almostEqual(got, 0.4) {
		t.Errorf("sleep = %v, want 0.4", got)
	}
	if got := blend.Properties["energy"]; !almostEqual(got, 0.35) {
		t.Errorf("energy = %v, want 0.35", got)
	}

	if !almostEqual(blend.Price, 14.5+11.0) {
		t.Errorf("price = %v, want sum %v", blend.Price, 14.5+11.0)
	}
	if blend.Scent != "floral, minty" {
		t.Errorf("scent = %q, want %q", blend.Scent, "floral, minty")
	}
}

func TestCombineIsDeterministic(t *testing.T) {
	items := []domain.Item{testLavender(), testMint()}

	first, err := CombineItems(items)
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	second, err := CombineItems(items)
	if err != nil {
		t.Fatalf("combine: %v", err)
	}

	if first.ID != second.ID || first.Name != second.Name || first.Scent != second.Scent {
		t.Fatalf("identity not deterministic: %+v vs %+v", first, second)
	}
	if first.ID == "" || first.Name == "" {
		t.Fatalf("identity not synthesized: %+v", first)
	}
}

func TestCombineDeduplicatesScents(t *testing.T) {
	a := testLavender()
	b := testLavender()
	b.ID = "lav2"

	blend, err := CombineItems([]domain.Item{a, b})
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	if blend.Scent != "floral" {
		t.Errorf("scent = %q, want %q", blend.Scent, "floral")
	}
	if got := blend.Properties["relaxation"]; !almostEqual(got, 0.9) {
		t.Errorf("relaxation = %v, want 0.9", got)
	}
}

func TestCombineEmptyInput(t *testing.T) {
	if _, err := CombineItems(nil); err != ErrNoItemsToCombine {
		t.Fatalf("combine(nil) error = %v, want ErrNoItemsToCombine", err)
	}
}
