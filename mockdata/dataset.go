package mockdata

// items is the static dataset. Read-only, safely shared across widget
// instances.
var items = []SearchItem{
	{ID: "1", Label: "React", Value: "react", Category: "Library", Description: "UI library for building component trees"},
	{ID: "2", Label: "Vue", Value: "vue", Category: "Framework", Description: "Progressive frontend framework"},
	{ID: "3", Label: "Angular", Value: "angular", Category: "Framework", Description: "Batteries-included web framework"},
	{ID: "4", Label: "Svelte", Value: "svelte", Category: "Framework", Description: "Compile-time UI framework"},
	{ID: "5", Label: "TypeScript", Value: "typescript", Category: "Language", Description: "Typed superset of JavaScript"},
	{ID: "6", Label: "Go", Value: "go", Category: "Language", Description: "Compiled language for simple, reliable software"},
	{ID: "7", Label: "Rust", Value: "rust", Category: "Language", Description: "Systems language without a garbage collector"},
	{ID: "8", Label: "Python", Value: "python", Category: "Language", Description: "General-purpose scripting language"},
	{ID: "9", Label: "Node.js", Value: "nodejs", Category: "Runtime", Description: "Server-side JavaScript runtime"},
	{ID: "10", Label: "Deno", Value: "deno", Category: "Runtime", Description: "Secure TypeScript runtime"},
	{ID: "11", Label: "PostgreSQL", Value: "postgresql", Category: "Database", Description: "Relational database"},
	{ID: "12", Label: "Redis", Value: "redis", Category: "Database", Description: "In-memory key-value store"},
	{ID: "13", Label: "SQLite", Value: "sqlite", Category: "Database", Description: "Embedded relational database"},
	{ID: "14", Label: "Docker", Value: "docker", Category: "Tool", Description: "Container build and runtime tooling"},
	{ID: "15", Label: "Kubernetes", Value: "kubernetes", Category: "Infrastructure", Description: "Container orchestration"},
	{ID: "16", Label: "Terraform", Value: "terraform", Category: "Infrastructure", Description: "Infrastructure as code"},
	{ID: "17", Label: "GraphQL", Value: "graphql", Category: "Tool", Description: "Query language for APIs"},
	{ID: "18", Label: "Webpack", Value: "webpack", Category: "Tool", Description: "Module bundler"},
	{ID: "19", Label: "Vite", Value: "vite", Category: "Tool", Description: "Fast dev server and bundler"},
	{ID: "20", Label: "Tailwind", Value: "tailwind", Category: "Library", Description: "Utility-first CSS framework"},
}
