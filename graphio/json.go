// Package graphio: JSON graph document codec.
package graphio

import (
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"

	"github.com/aaguirred/primtree/core"
)

// ErrEmptyDocument indicates a parsed document with no nodes and no edges.
var ErrEmptyDocument = errors.New("graphio: document has no nodes and no edges")

// Document is the on-disk graph representation.
type Document struct {
	Nodes []string    `json:"nodes"`
	Edges []EdgeEntry `json:"edges"`
}

// EdgeEntry is one [from, to, weight] triple. It marshals to and from the
// three-element JSON array used by the document format.
type EdgeEntry struct {
	From   string
	To     string
	Weight float64
}

// MarshalJSON encodes the entry as ["from", "to", weight].
func (e EdgeEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{e.From, e.To, e.Weight})
}

// UnmarshalJSON decodes a ["from", "to", weight] triple, rejecting any other
// shape.
func (e *EdgeEntry) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.Wrap(err, "graphio: edge entry is not an array")
	}
	if len(parts) != 3 {
		return errors.Errorf("graphio: edge entry must have 3 elements, got %d", len(parts))
	}
	if err := json.Unmarshal(parts[0], &e.From); err != nil {
		return errors.Wrap(err, "graphio: edge source")
	}
	if err := json.Unmarshal(parts[1], &e.To); err != nil {
		return errors.Wrap(err, "graphio: edge target")
	}
	if err := json.Unmarshal(parts[2], &e.Weight); err != nil {
		return errors.Wrap(err, "graphio: edge weight")
	}

	return nil
}

// Parse reads a JSON graph document from r and builds a weighted, undirected
// core.Graph. Endpoints referenced only by edges are created implicitly.
// Weight validity (finite, parallel edges, loops) is enforced by core.AddEdge.
func Parse(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "graphio: decoding document")
	}

	return FromDocument(&doc)
}

// ParseFile reads the JSON graph document at path.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: opening %s", path)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "graphio: parsing %s", path)
	}

	return g, nil
}

// FromDocument builds a weighted, undirected core.Graph from a decoded
// document.
func FromDocument(doc *Document) (*core.Graph, error) {
	if len(doc.Nodes) == 0 && len(doc.Edges) == 0 {
		return nil, ErrEmptyDocument
	}

	g := core.NewGraph(core.WithWeighted())
	for _, id := range doc.Nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, errors.Wrapf(err, "graphio: node %q", id)
		}
	}
	for _, e := range doc.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, errors.Wrapf(err, "graphio: edge %s-%s", e.From, e.To)
		}
	}

	return g, nil
}

// ToDocument builds the canonical document for g: nodes ascending, edges in
// Edge.ID (insertion) order with endpoints as stored.
func ToDocument(g *core.Graph) *Document {
	edges := g.Edges()
	doc := &Document{
		Nodes: g.Vertices(),
		// Non-nil so an edge-less graph serializes as "edges": [], never null.
		Edges: make([]EdgeEntry, 0, len(edges)),
	}
	for _, e := range edges {
		doc.Edges = append(doc.Edges, EdgeEntry{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// Write emits the canonical JSON document for g, indented, with a trailing
// newline.
func Write(w io.Writer, g *core.Graph) error {
	doc := ToDocument(g)
	// Deterministic edge order regardless of insertion sequence.
	sort.Slice(doc.Edges, func(i, j int) bool {
		if doc.Edges[i].From != doc.Edges[j].From {
			return doc.Edges[i].From < doc.Edges[j].From
		}
		if doc.Edges[i].To != doc.Edges[j].To {
			return doc.Edges[i].To < doc.Edges[j].To
		}

		return doc.Edges[i].Weight < doc.Edges[j].Weight
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "graphio: encoding document")
	}

	return nil
}

// WriteFile writes the canonical JSON document for g to path.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "graphio: creating %s", path)
	}
	defer f.Close()

	return Write(f, g)
}
