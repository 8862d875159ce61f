package filter

import (
	"slices"
	"testing"
)

type item struct {
	title    string
	tags     []string
	category string
}

func text(i item) []string {
	return append([]string{i.title}, i.tags...)
}

func category(i item) string { return i.category }

var items = []item{
	{title: "React Masterclass", tags: []string{"Hooks"}, category: "Frontend"},
	{title: "Node.js Guide", tags: []string{"Express"}, category: "Backend"},
	{title: "TypeScript Deep Dive", tags: []string{"Types"}, category: "Programming"},
}

func titles(in []item) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = v.title
	}
	return out
}

func TestApply_EmptyQueryReturnsAllInOrder(t *testing.T) {
	got := Apply(items, "", text)
	if !slices.Equal(titles(got), titles(items)) {
		t.Errorf("got %v, want %v", titles(got), titles(items))
	}
}

func TestApply_NoMatchReturnsEmpty(t *testing.T) {
	got := Apply(items, "haskell", text)
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func TestApply_CaseInsensitiveAcrossFields(t *testing.T) {
	got := Apply(items, "EXPRESS", text)
	if len(got) != 1 || got[0].title != "Node.js Guide" {
		t.Errorf("tag match = %v", titles(got))
	}
	got = Apply(items, "deep", text)
	if len(got) != 1 || got[0].title != "TypeScript Deep Dive" {
		t.Errorf("title match = %v", titles(got))
	}
}

func TestApply_AllCategoryIsNoop(t *testing.T) {
	got := Apply(items, "", text, Eq(All, category))
	if len(got) != len(items) {
		t.Errorf("len = %d, want %d", len(got), len(items))
	}
	got = Apply(items, "", text, Eq("", category))
	if len(got) != len(items) {
		t.Errorf("empty category len = %d, want %d", len(got), len(items))
	}
}

func TestApply_CategoryAndQueryCombine(t *testing.T) {
	got := Apply(items, "e", text, Eq("Backend", category))
	if len(got) != 1 || got[0].category != "Backend" {
		t.Errorf("got %v", titles(got))
	}
	got = Apply(items, "react", text, Eq("Backend", category))
	if len(got) != 0 {
		t.Errorf("expected no match, got %v", titles(got))
	}
}

func TestApply_Where(t *testing.T) {
	long := func(i item) bool { return len(i.title) > 15 }
	if got := Apply(items, "", text, Where(true, long)); len(got) != 2 {
		t.Errorf("enabled Where len = %d, want 2", len(got))
	}
	if got := Apply(items, "", text, Where(false, long)); len(got) != 3 {
		t.Errorf("disabled Where len = %d, want 3", len(got))
	}
}

func TestApply_NilInput(t *testing.T) {
	got := Apply[item](nil, "x", text)
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
