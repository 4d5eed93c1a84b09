package models

// GraphNode is one entry of the hierarchical edge bundling export. Edge nodes
// carry an empty label and import exactly the two entities they connect.
type GraphNode struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Imports []string `json:"imports"`
}
