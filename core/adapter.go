package core

import "github.com/archdrift/archdrift/schema"

// BuildDependencyModel normalizes the optional inputs into the canonical
// component -> dependency-set graph. A supplied dependency graph object is
// the primary source; otherwise the static-analysis dependency section is
// used. Runtime-observed edges, if present, are unioned in. Dependency
// targets that never appear as keys are registered as zero-out-degree nodes.
// The adapter never fails; all-nil input yields an empty model.
func BuildDependencyModel(static *schema.StaticResults, runtime *schema.RuntimeResults, graph *schema.DependencyGraph) schema.DependencyModel {
	model := schema.DependencyModel{}

	var primary map[string][]string
	switch {
	case graph != nil && graph.InternalDependencies != nil:
		primary = graph.InternalDependencies
	case static != nil:
		primary = static.DependencyAnalysis.InternalDependencies
	}
	mergeEdges(model, primary)

	if runtime != nil {
		mergeEdges(model, runtime.ObservedDependencies)
	}

	return model
}

// mergeEdges unions an adjacency list into the model, keeping components
// with no outgoing edges and registering every dependency target as a node.
func mergeEdges(model schema.DependencyModel, edges map[string][]string) {
	for component, deps := range edges {
		if component == "" {
			continue
		}
		model.Ensure(component)
		for _, dep := range deps {
			if dep == "" {
				continue
			}
			model.Add(component, dep)
			model.Ensure(dep)
		}
	}
}
