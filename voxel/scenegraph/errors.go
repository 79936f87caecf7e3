package scenegraph

import "errors"

var (
	// ErrNodeNotFound is returned by Node when the given id has no node.
	ErrNodeNotFound = errors.New("scenegraph: node not found")
	// ErrParentMissing is returned by Emplace when the requested parent id does not exist.
	ErrParentMissing = errors.New("scenegraph: parent node missing")
	// ErrNotAModelNode is returned when a non-Model node is given a non-nil
	// volume, and by Remove when asked to remove the root node.
	ErrNotAModelNode = errors.New("scenegraph: only Model nodes may carry a volume")
)
