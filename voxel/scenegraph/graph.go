// Package scenegraph implements the rooted tree of named, optionally
// volume-carrying nodes described in spec §3/§4.C, grounded on the
// teacher's arena-of-objects style (core.Scene.Objects) generalized from a
// flat object list to a parent/child tree keyed by stable integer ids, the
// way the spec's design notes (§9) call for to avoid the pointer-rewrite
// problem when the arena grows.
package scenegraph

// SceneGraph is an arena of nodes keyed by id, with id 0 reserved for Root.
type SceneGraph struct {
	nodes  map[int32]*SceneGraphNode
	nextID int32
}

// NewSceneGraph returns a graph containing only the root node.
func NewSceneGraph() *SceneGraph {
	g := &SceneGraph{nodes: make(map[int32]*SceneGraphNode), nextID: RootID + 1}
	root := newNode(RootID, NodeRoot, "root")
	root.parent = -1
	g.nodes[RootID] = root
	return g
}

// Root returns the graph's root node, always id 0.
func (g *SceneGraph) Root() *SceneGraphNode { return g.nodes[RootID] }

// HasNode reports whether id refers to a node in the graph.
func (g *SceneGraph) HasNode(id int32) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node looks up a node by id.
func (g *SceneGraph) Node(id int32) (*SceneGraphNode, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// NewNode allocates a detached node of the given type and name, not yet
// part of any graph's parent/child structure; pass it to Emplace to attach.
func (g *SceneGraph) NewNode(typ NodeType, name string) *SceneGraphNode {
	return newNode(-1, typ, name)
}

// Emplace appends node as the last child of parent and returns its newly
// assigned id, or ErrParentMissing if parent does not exist.
func (g *SceneGraph) Emplace(node *SceneGraphNode, parent int32) (int32, error) {
	p, ok := g.nodes[parent]
	if !ok {
		return -1, ErrParentMissing
	}
	id := g.nextID
	g.nextID++
	node.id = id
	node.parent = parent
	g.nodes[id] = node
	p.children = append(p.children, id)
	return id, nil
}

// EmplaceMove inserts node under parent, taking ownership of source's
// volume and marking source non-owning first — the moveNode variant from
// spec §3's lifecycle notes, used when the source node's data is being
// relocated rather than duplicated.
func (g *SceneGraph) EmplaceMove(node *SceneGraphNode, source *SceneGraphNode, parent int32) (int32, error) {
	if source != nil {
		node.vol = source.vol
		node.volOwned = source.volOwned
		source.volOwned = false
	}
	return g.Emplace(node, parent)
}

// Remove destroys a node and detaches it from its parent's children. The
// root cannot be removed (ErrNotAModelNode). Children of the removed node
// stay in the arena with their parent id still naming the removed node —
// callers must remove or reparent a subtree explicitly, node by node.
func (g *SceneGraph) Remove(id int32) error {
	if id == RootID {
		return ErrNotAModelNode
	}
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	if p, ok := g.nodes[n.parent]; ok {
		for i, c := range p.children {
			if c == id {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	delete(g.nodes, id)
	return nil
}

// CopyNode duplicates name, keyframes, visibility, lock state, properties,
// and palette from src into dst. If copyVolume is true the underlying grid
// data is cloned into a newly owned volume; otherwise dst shares a
// non-owning reference to src's volume.
func (g *SceneGraph) CopyNode(srcID, dstID int32, copyVolume bool) error {
	src, err := g.Node(srcID)
	if err != nil {
		return err
	}
	dst, err := g.Node(dstID)
	if err != nil {
		return err
	}
	dst.Name = src.Name
	dst.Visible = src.Visible
	dst.Locked = src.Locked
	dst.properties = src.properties.Clone()
	dst.pal = src.pal.Clone()
	dst.keyFrames = append([]KeyFrame(nil), src.keyFrames...)

	if copyVolume {
		dst.vol = src.vol.Clone()
		dst.volOwned = dst.vol != nil
	} else {
		dst.vol = src.vol
		dst.volOwned = false
	}
	return nil
}

// ModelNodes returns the ids of every Model node, in depth-first pre-order.
func (g *SceneGraph) ModelNodes() []int32 {
	var out []int32
	var walk func(id int32)
	walk = func(id int32) {
		n := g.nodes[id]
		if n.typ == NodeModel {
			out = append(out, id)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(RootID)
	return out
}

// AddSceneGraphNodes merges source into target under parentId: source's
// root properties are appended to target's parentId node, and source's
// forest is recursively re-parented (with nodes and owned volumes moved,
// not shared, since source is expected to be discarded by the caller
// afterward). Returns the number of Model nodes added.
func AddSceneGraphNodes(target, source *SceneGraph, parentId int32) (int, error) {
	parent, err := target.Node(parentId)
	if err != nil {
		return 0, err
	}
	parent.properties.Merge(source.Root().properties)

	count := 0
	var recurse func(srcParentID, dstParentID int32)
	recurse = func(srcParentID, dstParentID int32) {
		srcParent := source.nodes[srcParentID]
		for _, childID := range srcParent.children {
			child := source.nodes[childID]
			newNode := target.NewNode(child.typ, child.Name)
			newNode.Visible = child.Visible
			newNode.Locked = child.Locked
			newNode.properties = child.properties.Clone()
			newNode.pal = child.pal.Clone()
			newNode.keyFrames = append([]KeyFrame(nil), child.keyFrames...)

			newID, _ := target.EmplaceMove(newNode, child, dstParentID)
			if child.typ == NodeModel {
				count++
			}
			recurse(childID, newID)
		}
	}
	recurse(RootID, parentId)
	return count, nil
}
