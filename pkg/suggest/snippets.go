package suggest

// Snippet is a fixed, pre-authored script template offered when the
// trigger character starts a token. The catalog is static configuration,
// independent of document shape.
type Snippet struct {
	Label string
	Body  string
}

// DefaultSnippets is the built-in snippet catalog, always offered
// unfiltered in snippet context.
var DefaultSnippets = []Snippet{
	{Label: "log", Body: "console.log(data)"},
	{Label: "keys", Body: "Object.keys(data)"},
	{Label: "values", Body: "Object.values(data)"},
	{Label: "entries", Body: "Object.entries(data)"},
	{Label: "map", Body: "data.map(x => x)"},
	{Label: "filter", Body: "data.filter(x => x)"},
	{Label: "find", Body: "data.find(x => x)"},
	{Label: "reduce", Body: "data.reduce((acc, x) => acc, 0)"},
	{Label: "sort", Body: "data.sort((a, b) => a - b)"},
	{Label: "group", Body: "Object.groupBy(data, x => x)"},
	{Label: "stringify", Body: "JSON.stringify(data, null, 2)"},
	{Label: "table", Body: "console.table(data)"},
}
