// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node, with
// optional hooks, depth limiting, and neighbor filtering. Because
// core.Graph.Neighbors returns nodes sorted by NodeID minting sequence,
// visit order is fully reproducible for a fixed Store state.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/graphina"
	"github.com/katalvlaran/graphina/core"
)

type queueItem struct {
	id     core.NodeID
	depth  int
	parent core.NodeID
	hasPar bool
}

type walker[A any, W core.Number] struct {
	graph *core.Graph[A, W]
	opts  options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
//
// Returns graphina.ErrNodeNotFound if start is not live, or any
// user-supplied hook error wrapped with operation context.
func BFS[A any, W core.Number](g *core.Graph[A, W], start core.NodeID, opts ...Option) (*Result, *graphina.GraphError) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.ContainsNode(start) {
		return nil, graphina.NewNodeNotFound("bfs.BFS", start)
	}

	n := g.NodeCount()
	var queue []queueItem
	if o.pool != nil {
		h := o.pool.Acquire()
		defer func() {
			h.Value = h.Value[:0]
			h.Release()
		}()
		queue = h.Value[:0]
	} else {
		queue = make([]queueItem, 0, n)
	}

	w := &walker[A, W]{
		graph: g,
		opts:  o,
		queue: queue,
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  core.NewNodeMap[int](n),
			Parent: core.NewNodeMap[core.NodeID](n),
		},
	}

	w.enqueue(start, 0, core.NodeID{}, false)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

func (w *walker[A, W]) enqueue(id core.NodeID, depth int, parent core.NodeID, hasParent bool) {
	w.res.Depth.Set(id, depth)
	if hasParent {
		w.res.Parent.Set(id, parent)
	}
	w.opts.onEnqueue(id, depth)
	w.queue = append(w.queue, queueItem{id: id, depth: depth, parent: parent, hasPar: hasParent})
}

func (w *walker[A, W]) loop() *graphina.GraphError {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.ctx.Done():
			return graphina.Wrap(graphina.KindInvalidArgument, "bfs.BFS", w.opts.ctx.Err())
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

func (w *walker[A, W]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.onDequeue(item.id, item.depth)
	return item
}

func (w *walker[A, W]) visit(item queueItem) *graphina.GraphError {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.onVisit(item.id, item.depth); err != nil {
		return graphina.Wrap(graphina.KindInvalidArgument, "bfs.BFS", fmt.Errorf("OnVisit at %s: %w", item.id, err))
	}
	return nil
}

func (w *walker[A, W]) enqueueNeighbors(item queueItem) {
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.filterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.maxDepth > 0 && nextDepth > w.opts.maxDepth {
			continue
		}
		if _, seen := w.res.Depth.Get(nbr); !seen {
			w.enqueue(nbr, nextDepth, item.id, true)
		}
	}
}
