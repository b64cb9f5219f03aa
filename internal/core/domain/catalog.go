package domain

// CatalogEntry is one name/description pair shown to the caller as an
// available command.
type CatalogEntry struct {
	Name        string
	Description string
}

// Catalog derives the printable command catalog from a task table: only
// tasks carrying a description are included, deduplicated by name and sorted
// lexicographically. Undocumented tasks are silently omitted.
func Catalog(table *TaskTable) []CatalogEntry {
	var entries []CatalogEntry
	for _, def := range table.Definitions() {
		if def.Description == "" {
			continue
		}
		entries = append(entries, CatalogEntry{
			Name:        def.Name,
			Description: def.Description,
		})
	}
	return entries
}
