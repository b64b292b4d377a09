package cmd

// itemKind classifies a transfer item by what exists on disk.
type itemKind string

const (
	kindFile      itemKind = "file"
	kindDirectory itemKind = "directory"
)

// transferItem is one manifest entry that exists under the project root.
type transferItem struct {
	Path string
	Kind itemKind
}

func (i transferItem) isDir() bool { return i.Kind == kindDirectory }
