package transform

import "github.com/ericb-bissell/rst-word-addin/model"

// mergeFlatLists rebuilds one nested list tree from a run of flat,
// single-item lists carrying parse-time indent hints. The returned tree
// carries no hint fields; the flat inputs are discarded.
func mergeFlatLists(run []*model.List) *model.List {
	root := &model.List{Origin: run[0].Origin, Type: run[0].Type}
	for _, flat := range run {
		for _, item := range flat.Items {
			insertFlatItem(root, item, flat.Indent, flat.Type)
		}
	}
	return root
}

// insertFlatItem places one flat item into the growing tree.
//
// At indent 0 an item of the root's type appends as a sibling; an item of
// the other type nests under the last sibling, creating its nested list if
// absent. At indent n the walk descends last item to nested list n times,
// creating missing lists of the item's type along the way. An indent that
// skips past the deepest existing item attaches at the deepest reachable
// list instead.
func insertFlatItem(root *model.List, item *model.ListItem, indent int, itemType model.ListType) {
	if indent <= 0 {
		if itemType == root.Type || len(root.Items) == 0 {
			root.Items = append(root.Items, item)
			return
		}
		last := root.Items[len(root.Items)-1]
		if last.Nested == nil {
			last.Nested = &model.List{Type: itemType}
		}
		last.Nested.Items = append(last.Nested.Items, item)
		return
	}

	cur := root
	for level := 0; level < indent; level++ {
		if len(cur.Items) == 0 {
			break
		}
		last := cur.Items[len(cur.Items)-1]
		if last.Nested == nil {
			last.Nested = &model.List{Type: itemType}
		}
		cur = last.Nested
	}
	cur.Items = append(cur.Items, item)
}
