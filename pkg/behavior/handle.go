package behavior

// TreeID names one stored root node inside the engine. IDs are handed
// out by Create in insertion order and are never reused. Many subjects
// may carry the same TreeID; they share the tree's structure while
// composites keep their progress separate per subject.
type TreeID int

// Assignment pairs a subject with the tree it should run. Subject
// sources produce one Assignment per active subject per pass; skipped
// subjects are already filtered out.
type Assignment[S comparable] struct {
	Subject S
	Tree    TreeID
}
