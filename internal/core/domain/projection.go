package domain

// Projection is the role-filtered view of a client record, keyed by field
// name. Fields with empty values never appear, regardless of role.
type Projection map[FieldName]string

// ProjectClient filters a raw client record down to what the requester may
// see. Admins see every non-empty field; clients additionally require the
// field to be visible under the current settings.
func ProjectClient(c Client, vis FieldVisibility, role string) Projection {
	out := make(Projection, len(FieldNames))
	for _, name := range FieldNames {
		value := c.Field(name)
		if value == "" {
			continue
		}
		if role != RoleAdmin && !vis.Visible(name) {
			continue
		}
		out[name] = value
	}
	return out
}

// ProjectArchive applies the same filtering to an archived order.
func ProjectArchive(o ArchiveOrder, vis FieldVisibility, role string) Projection {
	return ProjectClient(Client(o), vis, role)
}
