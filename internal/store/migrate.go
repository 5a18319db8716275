package store

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	entschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"github.com/abhisek/aula/ent/schema"
)

// tables lists the store tables, built from their ent schemas.
func tables() ([]*entschema.Table, error) {
	events, err := tableFor(llmEventsTable, schema.LLMRequestEvent{})
	if err != nil {
		return nil, err
	}
	return []*entschema.Table{events}, nil
}

// tableFor converts an ent schema into a migration table: an auto
// increment "id" primary key, one column per field and one index per
// ent index, named <table>_<fields>.
func tableFor(name string, s ent.Interface) (*entschema.Table, error) {
	t := entschema.NewTable(name)
	t.AddPrimary(&entschema.Column{Name: "id", Type: field.TypeInt, Increment: true})

	for _, f := range s.Fields() {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, d.Name, d.Err)
		}
		t.AddColumn(columnFor(d))
	}

	for _, idx := range s.Indexes() {
		d := idx.Descriptor()
		for _, col := range d.Fields {
			if !t.HasColumn(col) {
				return nil, fmt.Errorf("%s: index on unknown column %q", name, col)
			}
		}
		idxName := d.StorageKey
		if idxName == "" {
			idxName = name + "_" + strings.Join(d.Fields, "_")
		}
		t.AddIndex(idxName, d.Unique, d.Fields)
	}
	return t, nil
}

func columnFor(d *field.Descriptor) *entschema.Column {
	c := &entschema.Column{
		Name:       d.Name,
		Type:       d.Info.Type,
		Size:       int64(d.Size),
		Unique:     d.Unique,
		Nullable:   d.Optional,
		SchemaType: d.SchemaType,
		Comment:    d.Comment,
	}
	if d.StorageKey != "" {
		c.Name = d.StorageKey
	}
	// Function defaults such as time.Now are applied by the writer.
	switch d.Default.(type) {
	case string, bool, int, int64, float64:
		c.Default = d.Default
	}
	return c
}

// migrate creates or updates the tables described by the ent schemas.
// Columns and indexes are never dropped.
func (s *Store) migrate(ctx context.Context) error {
	ts, err := tables()
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	m, err := entschema.NewMigrate(entsql.OpenDB(dialect.SQLite, s.db))
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := m.Create(ctx, ts...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
