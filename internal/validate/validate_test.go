package validate

import (
	"testing"

	"cfomatch/internal/domain"
)

type sample struct {
	ID      string         `json:"id" validate:"required,uuid"`
	Comment string         `json:"comment" validate:"min=10,max=500"`
	Rating  int            `json:"rating" validate:"gte=1,lte=5"`
	Scores  map[string]int `json:"scores" validate:"dive,gte=1,lte=5"`
	Ignored string         `json:"-"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{ID: "nope", Comment: "short", Rating: 9, Scores: map[string]int{"x": 0}})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := err.(*domain.Error).Fields
	for _, f := range []string{"id", "comment", "rating", "scores[x]"} {
		if _, ok := fields[f]; !ok {
			t.Fatalf("expected %q in %v", f, fields)
		}
	}
	if fields["comment"] != "must be at least 10 characters" {
		t.Fatalf("unexpected comment reason %q", fields["comment"])
	}
}

func TestStructAcceptsValid(t *testing.T) {
	ok := sample{
		ID:      "0b6f3c1e-6a8e-4a51-9d55-5d1d7b0a9e11",
		Comment: "ten chars!",
		Rating:  5,
		Scores:  map[string]int{"x": 1},
	}
	if err := Struct(ok); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}
