// Package listing is the read model over the combined folder and document
// collections: scope filtering, free-text search, the two mutually
// exclusive sort toggles and fixed-size pagination. It is a pure projection
// over already-fetched data; nothing here touches storage or transport.
package listing

import (
	"documint/internal/models"
	"sort"
	"strings"
	"time"
)

// PageSize is the fixed number of items per page.
const PageSize = 10

type ItemType string

const (
	ItemTypeFolder   ItemType = "folder"
	ItemTypeDocument ItemType = "document"
)

// Item is a folder or a document flattened into one row of the combined
// view. Document-only fields are zero for folders.
type Item struct {
	Type      ItemType  `json:"type"`
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	FolderID  int64     `json:"folder_id,omitempty"`
	FileType  string    `json:"file_type,omitempty"`
	Size      int64     `json:"size,omitempty"`
}

type SortField int

const (
	SortNone SortField = iota
	SortByName
	SortByDate
)

// SortSpec holds at most one active sort. The zero value means the original
// fetch order. Callers are expected to reset the page to 1 whenever the
// scope, the query or a mutation changes the visible set.
type SortSpec struct {
	Field      SortField
	Descending bool
}

// ToggleName cycles the name sort asc -> desc -> off and deactivates any
// date sort.
func (s SortSpec) ToggleName() SortSpec {
	if s.Field != SortByName {
		return SortSpec{Field: SortByName}
	}
	if !s.Descending {
		return SortSpec{Field: SortByName, Descending: true}
	}
	return SortSpec{}
}

// ToggleDate cycles the date sort asc -> desc -> off and deactivates any
// name sort.
func (s SortSpec) ToggleDate() SortSpec {
	if s.Field != SortByDate {
		return SortSpec{Field: SortByDate}
	}
	if !s.Descending {
		return SortSpec{Field: SortByDate, Descending: true}
	}
	return SortSpec{}
}

type Page struct {
	Items      []Item `json:"items"`
	Number     int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	TotalItems int    `json:"total_items"`
}

// Project builds one page of the combined view.
//
// With a nil folderID the visible set is every folder except Root plus the
// documents that live directly under Root; inside a folder it is exactly
// that folder's documents. An active search (trimmed non-empty query)
// replaces the visible set with a global match over all folders except Root
// and all documents, on name or created_by, case-insensitively.
func Project(folders []*models.Folder, documents []*models.Document, folderID *int64, query string, sortSpec SortSpec, page int) Page {
	items := visibleItems(folders, documents, folderID)

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		items = searchItems(folders, documents, q)
	}

	sortItems(items, sortSpec)

	return paginate(items, page)
}

func visibleItems(folders []*models.Folder, documents []*models.Document, folderID *int64) []Item {
	items := make([]Item, 0)

	if folderID == nil {
		for _, f := range folders {
			if f.ID == models.RootFolderID {
				continue
			}
			items = append(items, folderItem(f))
		}
		for _, d := range documents {
			if d.FolderID == models.RootFolderID {
				items = append(items, documentItem(d))
			}
		}
		return items
	}

	for _, d := range documents {
		if d.FolderID == *folderID {
			items = append(items, documentItem(d))
		}
	}

	return items
}

func searchItems(folders []*models.Folder, documents []*models.Document, query string) []Item {
	items := make([]Item, 0)

	for _, f := range folders {
		if f.ID == models.RootFolderID {
			continue
		}
		if matches(f.Name, f.CreatedBy, query) {
			items = append(items, folderItem(f))
		}
	}

	for _, d := range documents {
		if matches(d.Name, d.CreatedBy, query) {
			items = append(items, documentItem(d))
		}
	}

	return items
}

func matches(name string, createdBy string, query string) bool {
	if strings.Contains(strings.ToLower(name), query) {
		return true
	}
	return createdBy != "" && strings.Contains(strings.ToLower(createdBy), query)
}

func sortItems(items []Item, spec SortSpec) {
	switch spec.Field {
	case SortByName:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := strings.ToLower(items[i].Name), strings.ToLower(items[j].Name)
			if spec.Descending {
				return a > b
			}
			return a < b
		})
	case SortByDate:
		sort.SliceStable(items, func(i, j int) bool {
			if spec.Descending {
				return items[i].CreatedAt.After(items[j].CreatedAt)
			}
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		})
	}
}

func paginate(items []Item, page int) Page {
	total := len(items)
	totalPages := (total + PageSize - 1) / PageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

func folderItem(f *models.Folder) Item {
	return Item{
		Type:      ItemTypeFolder,
		ID:        f.ID,
		Name:      f.Name,
		CreatedBy: f.CreatedBy,
		CreatedAt: f.CreatedAt,
	}
}

func documentItem(d *models.Document) Item {
	return Item{
		Type:      ItemTypeDocument,
		ID:        d.ID,
		Name:      d.Name,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
		FolderID:  d.FolderID,
		FileType:  d.FileType,
		Size:      d.Size,
	}
}
