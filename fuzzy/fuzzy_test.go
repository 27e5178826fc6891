package fuzzy

import (
	"testing"
)

func TestSearch(t *testing.T) {
	ix := NewIndex(2, []string{
		"he/him/his/his/himself",
		"she/her/her/hers/herself",
		"xe/xem/xyr/xyrs/xemself",
	})

	scores := make([]uint8, ix.Len())
	var hi uint8
	ix.Search("xem/xemsef", func(index int, score, low, high uint8) {
		scores[index] = score
		hi = high
	})

	if scores[2] != hi {
		t.Errorf("expected xe to score highest: %v", scores)
	}
	if scores[0] >= scores[2] || scores[1] >= scores[2] {
		t.Errorf("scores not ordered: %v", scores)
	}
}

func TestShortWords(t *testing.T) {
	ix := NewIndex(3, []string{"e/em/eir/eirs/emself", "it/it/its/its/itself"})

	ix.Search("e", func(index int, score, low, high uint8) {
		if index == 0 && score != 1 {
			t.Errorf("fail 1: %d", score)
		}
		if index == 1 && score != 0 {
			t.Errorf("fail 2: %d", score)
		}
	})
}

func TestSaturate(t *testing.T) {
	long := ""
	for i := 0; i < 400; i++ {
		long += "a"
	}
	ix := NewIndex(2, []string{"short word", long})

	ix.Search(long, func(index int, score, low, high uint8) {
		if index == 1 && score != 255 {
			t.Errorf("fail: %d", score)
		}
		if index == 0 && (score != 0 || low != 0) {
			t.Errorf("fail: %d", score)
		}
	})
}
