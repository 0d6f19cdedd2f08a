package diagram

import (
	"testing"
)

func TestTags(t *testing.T) {
	d := unitSquare().AppendTags("a", "b", "a")
	diff(t, []string{"a", "b"}, d.Tags())
	d = d.AppendTags("b", "c")
	diff(t, []string{"a", "b", "c"}, d.Tags())

	if !d.ContainTag("b") || d.ContainTag("z") {
		t.Error("wrong ContainTag result")
	}
	if !d.ContainAllTags("a", "c") || d.ContainAllTags("a", "z") {
		t.Error("wrong ContainAllTags result")
	}
	if !d.ContainAllTags() {
		t.Error("empty tag list isn't contained")
	}

	r := d.RemoveTags("b", "z")
	diff(t, []string{"a", "c"}, r.Tags())
	diff(t, []string{"a", "b", "c"}, d.Tags())

	if got := d.ResetTags().Tags(); len(got) != 0 {
		t.Errorf("got tags %v after reset", got)
	}
}

func TestAppendTagsOnlyTagsSelf(t *testing.T) {
	c := Combine(unitSquare(), Text("x")).AppendTags("group")
	if !c.ContainTag("group") {
		t.Fatal("composite wasn't tagged")
	}
	for _, ch := range c.Children() {
		if len(ch.Tags()) != 0 {
			t.Errorf("child %s was tagged", ch)
		}
	}
}
