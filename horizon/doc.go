/*
Package horizon provides the record types of the Horizon metadata data model
and the validator that builds them from unstructured input.

The model describes cataloged resources, datasets, data releases and their
distributions, components, creators, contributors, licenses and locations.
Record types are plain structs with JSON tags matching the wire names; the
inheritance chains CatalogedResource → Dataset → DataRelease and
Entity → Creator → Contributor are expressed by struct embedding.

Every record type is also declared in declarations.go. The validator derives a
JSON Schema document from those declarations and uses it to report every
violation at once before decoding into the typed record.

When enumeration.json changes, regenerate enumeration_gen.go with
go generate. The generation happens in generator.go using text/template and
go/format.
*/
package horizon

//go:generate go run generator.go
