// Package notion implements store.EntryStore against a Notion database via
// the public REST API: a filtered database query, page property updates and
// page creation. Entries are mapped to and from the database's property
// schema (titleSlug, Last Reviewed, Repetition Gap, Level, Source,
// Materials, Name).
package notion
