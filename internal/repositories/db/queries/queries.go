// Package queries is the catalog of every SQL statement the persistence
// gateways are allowed to run. Repositories never build SQL anywhere else,
// so the exact columns and ordering of each read live in one place.
package queries

// Folder statements.
const (
	SelectAllFolders = `SELECT id, name, created_by, created_at FROM folders ORDER BY created_at DESC`

	SelectFolderByID = `SELECT id, name, created_by, created_at FROM folders WHERE id = $1`

	FolderExists = `SELECT EXISTS (SELECT 1 FROM folders WHERE id = $1)`

	InsertFolder = `INSERT INTO folders (name, created_by) VALUES ($1, $2) RETURNING id`

	DeleteFolder = `DELETE FROM folders WHERE id = $1`
)

// Document statements.
const (
	SelectAllDocuments = `SELECT id, name, folder_id, file_type, size, created_by, created_at FROM documents ORDER BY created_at DESC`

	SelectDocumentByID = `SELECT id, name, folder_id, file_type, size, created_by, created_at FROM documents WHERE id = $1`

	SelectDocumentsByFolder = `SELECT id, name, folder_id, file_type, size, created_by, created_at FROM documents WHERE folder_id = $1 ORDER BY created_at DESC`

	SearchDocumentsByName = `SELECT id, name, folder_id, file_type, size, created_by, created_at FROM documents WHERE name ILIKE $1 ORDER BY created_at DESC`

	InsertDocument = `INSERT INTO documents (name, folder_id, file_type, size, created_by) VALUES ($1, $2, $3, $4, $5) RETURNING id`

	DeleteDocument = `DELETE FROM documents WHERE id = $1`

	CountDocumentsInFolder = `SELECT COUNT(*) FROM documents WHERE folder_id = $1`
)

// SearchPattern turns a trimmed search term into the ILIKE substring pattern.
func SearchPattern(term string) string {
	return "%" + term + "%"
}
