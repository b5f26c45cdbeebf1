package constrainedrandom

import "testing"

func TestSourceDeterministic(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 1000; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("sources seeded identically diverged at draw %d", i)
		}
	}
}

func TestSourceDifferentSeeds(t *testing.T) {
	a := NewSource(1)
	b := NewSource(2)
	same := true
	for i := 0; i < 32; i++ {
		if a.Uint32() != b.Uint32() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("sources with different seeds produced identical sequences")
	}
}

func TestIntRangeBounds(t *testing.T) {
	src := NewSource(7)
	for i := 0; i < 10000; i++ {
		v := src.IntRange(3, 9)
		if v < 3 || v > 9 {
			t.Fatalf("IntRange(3,9) produced out-of-range value %d", v)
		}
	}
}

func TestChoiceStaysInSlice(t *testing.T) {
	src := NewSource(5)
	xs := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[Choice(src, xs)] = true
	}
	for _, x := range xs {
		if !seen[x] {
			t.Fatalf("Choice never produced %q across 500 draws", x)
		}
	}
}

func TestWeightedChoiceRespectsWeights(t *testing.T) {
	src := NewSource(11)
	entries := []WeightedEntry{
		{Value: "rare", Weight: 1},
		{Value: "common", Weight: 99},
	}
	counts := map[any]int{}
	for i := 0; i < 2000; i++ {
		counts[src.WeightedChoice(entries).Value]++
	}
	if counts["common"] <= counts["rare"]*5 {
		t.Fatalf("expected common to dominate rare heavily, got %v", counts)
	}
}

func TestShufflePermutes(t *testing.T) {
	src := NewSource(3)
	xs := []int{1, 2, 3, 4, 5}
	orig := append([]int{}, xs...)
	Shuffle(src, xs)
	sum := 0
	for _, v := range xs {
		sum += v
	}
	origSum := 0
	for _, v := range orig {
		origSum += v
	}
	if sum != origSum {
		t.Fatalf("shuffle changed the multiset of elements: got %v want permutation of %v", xs, orig)
	}
}
