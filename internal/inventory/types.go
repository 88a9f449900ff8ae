package inventory

// Namespace is an owning group for projects (e.g., a team or org unit).
type Namespace struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProjectType classifies a project (e.g., "HTTP API", "Consumer").
type ProjectType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Project is one entry in the inventory.
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Namespace   string `json:"namespace"`
	ProjectType string `json:"project_type"`
}

// Query carries the active filters for a project listing. A nil field means
// the corresponding filter is inactive and its query parameter is omitted
// entirely, mirroring the sparse filter map upstream.
type Query struct {
	NamespaceID   *int
	ProjectTypeID *int
}
