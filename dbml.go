package okra

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// DBMLProject exports the derived schema of one or more models as a DBML
// project for documentation. Link fields become references; index tags
// become indexes.
func DBMLProject(name string, schemas ...DBMLTable) (*dbml.Project, error) {
	project := dbml.NewProject(name).
		WithDatabaseType("SurrealDB")
	for _, s := range schemas {
		table, err := s.dbmlTable()
		if err != nil {
			return nil, err
		}
		project.AddTable(table)
	}
	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("generated DBML is invalid: %w", err)
	}
	return project, nil
}

// DBMLTable is implemented by Schema so heterogeneous model lists can be
// exported together.
type DBMLTable interface {
	dbmlTable() (*dbml.Table, error)
}

func (s *Schema[T]) dbmlTable() (*dbml.Table, error) {
	table := dbml.NewTable(s.table)
	for _, f := range s.fields {
		if !f.Serialisable() {
			continue
		}
		col := dbml.NewColumn(f.Name, f.Type)
		if f.Name == "id" {
			col.WithPrimaryKey()
		} else {
			col.WithNull()
		}
		if f.Default != "" {
			col.WithDefault(f.Default)
		}
		switch f.Relation {
		case RelationLinkOne, RelationLinkSelf, RelationLinkMany:
			col.WithRef(dbml.ManyToOne, "", f.Target, "id")
		}
		table.AddColumn(col)
		if f.Index != "" {
			name := f.Index
			if rest, ok := cutUnique(name); ok {
				name = rest
			}
			table.AddIndex(dbml.NewIndex(f.Name).WithName(name))
		}
	}
	return table, nil
}

func cutUnique(name string) (string, bool) {
	const prefix = "unique:"
	if len(name) > len(prefix) && name[:len(prefix)] == prefix {
		return name[len(prefix):], true
	}
	return name, false
}
