package weight

import "testing"

func TestCheckMinWeightVector(t *testing.T) {
	seq := []int{2, 2, 2, 2, 0, 0, 0, 0, 0, 1, 1, 1, 1}

	ok, err := CheckMinWeight(seq, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("expected threshold 4 to succeed")
	}

	ok, err = CheckMinWeight(seq, 5)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("expected threshold 5 to fail")
	}
}

func TestCheckTargetWeight(t *testing.T) {
	seq := []int{2, 2, 2, 2, 0, 0, 0, 0, 0, 1, 1, 1, 1}
	if !CheckTargetWeight(seq, 4, 4) {
		t.Fatalf("expected exact weight (plus=4,minus=4) to match")
	}
	if CheckTargetWeight(seq, 3, 4) {
		t.Fatalf("expected weight (plus=3,minus=4) to be rejected")
	}
}

func TestCheckMinWeightRejectsNegativeThreshold(t *testing.T) {
	if _, err := CheckMinWeight([]int{0, 1, 2}, -1); err == nil {
		t.Fatalf("expected error for negative threshold")
	}
}
