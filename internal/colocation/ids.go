package colocation

import "sort"

// iTreeNode is one node of an I-tree: the path from a head node down to any
// node names an I-clique candidate. Nodes live in a flat arena
// (iTree.nodes) addressed by index rather than as a web of pointers, so the
// tree for one head can be dropped in a single GC sweep with nothing else
// in the arena keeping it alive past its head's BFS.
type iTreeNode struct {
	instance Instance
	parent   int // index into iTree.nodes, -1 for a head node
	children []int
	isHead   bool
}

type iTree struct {
	nodes []iTreeNode
}

func (t *iTree) addHead(in Instance) int {
	t.nodes = append(t.nodes, iTreeNode{instance: in, parent: -1, isHead: true})
	return len(t.nodes) - 1
}

func (t *iTree) addChild(parent int, in Instance) int {
	t.nodes = append(t.nodes, iTreeNode{instance: in, parent: parent})
	idx := len(t.nodes) - 1
	t.nodes[parent].children = append(t.nodes[parent].children, idx)
	return idx
}

// rightSiblingInstances returns RS(node): the instances attached to every
// child of node's parent that was added after node.
func (t *iTree) rightSiblingInstances(nodeIdx int) map[Instance]struct{} {
	node := t.nodes[nodeIdx]
	rs := make(map[Instance]struct{})
	if node.parent == -1 {
		return rs
	}
	siblings := t.nodes[node.parent].children
	pos := -1
	for i, s := range siblings {
		if s == nodeIdx {
			pos = i
			break
		}
	}
	for _, s := range siblings[pos+1:] {
		rs[t.nodes[s].instance] = struct{}{}
	}
	return rs
}

// pathClique returns the instances from the head down to node, in
// head-to-node order (not yet total-order sorted; NewClique sorts it).
func (t *iTree) pathClique(nodeIdx int) []Instance {
	var out []Instance
	for idx := nodeIdx; idx != -1; idx = t.nodes[idx].parent {
		out = append(out, t.nodes[idx].instance)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// MineCliquesIDS enumerates I-cliques via the instance-driven scheme: for
// every instance s taken as a head, BFS an I-tree whose root's children are
// BNs(s) (Lemma 3) and whose deeper children are each node's BNs ∩ RS,
// RS being that node's own right siblings, emitting one clique at every
// leaf.
func MineCliquesIDS(dataset *SpatialDataset, rel *NeighborhoodRelation) []Clique {
	var cliques []Clique

	instances := dataset.Instances()
	for _, head := range instances {
		t := &iTree{}
		headIdx := t.addHead(head)

		queue := []int{headIdx}
		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]

			childInstances := childrenFor(t, curr, rel)
			if len(childInstances) == 0 {
				clique := t.pathClique(curr)
				if len(clique) > 1 {
					cliques = append(cliques, NewClique(clique))
				}
				continue
			}

			for _, in := range childInstances {
				queue = append(queue, t.addChild(curr, in))
			}
		}
	}

	return cliques
}

// childrenFor computes the child instance set for node per Lemma 3: a head
// node's children are BNs(s); any other node's children are BNs(s)
// restricted to the right siblings of the node itself (ensuring every
// I-clique is generated along exactly one root-to-leaf path). Candidates
// whose feature already occurs on the root-to-node path are excluded so
// every emitted path stays feature-distinct.
func childrenFor(t *iTree, nodeIdx int, rel *NeighborhoodRelation) []Instance {
	node := t.nodes[nodeIdx]

	var raw []Instance
	if node.isHead {
		raw = rel.BigNeighbors(node.instance)
	} else {
		rs := t.rightSiblingInstances(nodeIdx)
		for _, bn := range rel.BigNeighbors(node.instance) {
			if _, ok := rs[bn]; ok {
				raw = append(raw, bn)
			}
		}
	}

	ancestorFeatures := t.ancestorFeatures(nodeIdx)
	candidates := make([]Instance, 0, len(raw))
	for _, in := range raw {
		if _, clash := ancestorFeatures[in.Feature]; !clash {
			candidates = append(candidates, in)
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Less(candidates[j]) })
	return candidates
}

// ancestorFeatures returns the set of features carried by nodeIdx and every
// node on the path from nodeIdx up to (and including) its head.
func (t *iTree) ancestorFeatures(nodeIdx int) map[string]struct{} {
	out := make(map[string]struct{})
	for idx := nodeIdx; idx != -1; idx = t.nodes[idx].parent {
		out[t.nodes[idx].instance.Feature] = struct{}{}
	}
	return out
}
