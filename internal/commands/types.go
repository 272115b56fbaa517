package commands

// Output formats accepted by the -o flag.
const (
	OutputTable = "table"
	OutputGraph = "graph"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputProm  = "prom"
)
