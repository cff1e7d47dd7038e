package ran_int_gen

import (
	"errors"
	"slices"
	"testing"
)

func TestGenerate_Bounds(t *testing.T) {
	t.Parallel()

	for _, size := range []int{1, 2, 10, 1000} {
		data, err := New(7).Generate(size)
		if err != nil {
			t.Fatalf("Generate(%d) returned error: %v", size, err)
		}
		if len(data) != size {
			t.Fatalf("Generate(%d) returned %d elements", size, len(data))
		}
		for i, v := range data {
			if v < 0 || v >= size {
				t.Fatalf("Generate(%d)[%d] = %d, out of [0, %d)", size, i, v, size)
			}
		}
	}
}

func TestGenerate_SingleElementIsZero(t *testing.T) {
	t.Parallel()

	data, err := New(3).Generate(1)
	if err != nil {
		t.Fatal(err)
	}
	if data[0] != 0 {
		t.Errorf("Generate(1) = %v, want [0]", data)
	}
}

func TestGenerate_Empty(t *testing.T) {
	t.Parallel()

	data, err := New(1).Generate(0)
	if err != nil {
		t.Fatalf("Generate(0) returned error: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Generate(0) = %v, want empty", data)
	}
}

func TestGenerate_NegativeSize(t *testing.T) {
	t.Parallel()

	_, err := New(1).Generate(-5)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Generate(-5) error = %v, want ErrInvalidSize", err)
	}
}

func TestGenerate_SeedReproducible(t *testing.T) {
	t.Parallel()

	a, _ := New(99).Generate(500)
	b, _ := New(99).Generate(500)
	if !slices.Equal(a, b) {
		t.Error("same seed produced different datasets")
	}
	c, _ := New(100).Generate(500)
	if slices.Equal(a, c) {
		t.Error("different seeds produced identical datasets")
	}
}

func TestNew_ZeroSeedIsReplaced(t *testing.T) {
	t.Parallel()

	if New(0).Seed() == 0 {
		t.Error("New(0).Seed() = 0, want time-derived seed")
	}
	if got := New(12).Seed(); got != 12 {
		t.Errorf("New(12).Seed() = %d", got)
	}
}

func TestGenerateAll(t *testing.T) {
	t.Parallel()

	sets, err := New(5).GenerateAll([]int{10, 100, 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(sets) != 2 {
		t.Fatalf("GenerateAll returned %d datasets, want 2", len(sets))
	}
	for size, data := range sets {
		if len(data) != size {
			t.Errorf("dataset for size %d has %d elements", size, len(data))
		}
	}

	if _, err := New(5).GenerateAll([]int{10, -1}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("GenerateAll with negative size error = %v", err)
	}
}
