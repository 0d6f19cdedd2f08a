package diagram

import "slices"

// Tags returns a copy of d's tags, in the order they were added.
func (d *Diagram) Tags() []string {
	return slices.Clone(d.tags)
}

// AppendTags adds tags to d. Tags d already has are skipped. Only d itself is
// tagged, not its children.
func (d *Diagram) AppendTags(tags ...string) *Diagram {
	n, _ := d.edit()
	for _, tag := range tags {
		if !slices.Contains(n.tags, tag) {
			n.tags = append(n.tags, tag)
		}
	}
	return n
}

// RemoveTags removes tags from d. Tags d doesn't have are ignored.
func (d *Diagram) RemoveTags(tags ...string) *Diagram {
	n, _ := d.edit()
	n.tags = slices.DeleteFunc(n.tags, func(tag string) bool {
		return slices.Contains(tags, tag)
	})
	return n
}

// ResetTags removes all of d's tags.
func (d *Diagram) ResetTags() *Diagram {
	n, _ := d.edit()
	n.tags = nil
	return n
}

// ContainTag reports whether d has tag.
func (d *Diagram) ContainTag(tag string) bool {
	return slices.Contains(d.tags, tag)
}

// ContainAllTags reports whether d has every one of tags. It is true for an
// empty list.
func (d *Diagram) ContainAllTags(tags ...string) bool {
	for _, tag := range tags {
		if !d.ContainTag(tag) {
			return false
		}
	}
	return true
}
