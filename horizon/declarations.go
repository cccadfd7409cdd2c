package horizon

import "fmt"

// FieldKind is the semantic type of a declared field.
type FieldKind int

const (
	_ FieldKind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindDateTime
	KindURI
	KindEnum
	KindRecord
)

func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindDateTime:
		return "date-time"
	case KindURI:
		return "uri"
	case KindEnum:
		return "enum"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Field declares a single field of a record type.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool

	// List marks ordered sequences of Kind. NonEmpty requires at least one
	// element and implies Required.
	List     bool
	NonEmpty bool

	// Enum holds the literal set of KindEnum fields.
	Enum []string

	// Record is the nested type of KindRecord fields.
	Record RecordType

	// Default is applied when the field is absent from the input. It is not
	// applied when the field is present with a null value.
	Default interface{}

	Description string
}

// Declaration describes a record type. Fields of Extends come first.
type Declaration struct {
	Type        RecordType
	Extends     RecordType
	Description string
	Fields      []Field
}

func str(name, desc string) Field {
	return Field{Name: name, Kind: KindString, Required: true, Description: desc}
}

func dateTime(name, desc string) Field {
	return Field{Name: name, Kind: KindDateTime, Required: true, Description: desc}
}

func uri(name, desc string) Field {
	return Field{Name: name, Kind: KindURI, Required: true, Description: desc}
}

func boolean(name, desc string) Field {
	return Field{Name: name, Kind: KindBoolean, Required: true, Description: desc}
}

func float(name, desc string) Field {
	return Field{Name: name, Kind: KindFloat, Required: true, Description: desc}
}

func integer(name, desc string) Field {
	return Field{Name: name, Kind: KindInteger, Required: true, Description: desc}
}

func enum(name string, values []string, desc string) Field {
	return Field{Name: name, Kind: KindEnum, Required: true, Enum: values, Description: desc}
}

func record(name string, rt RecordType, desc string) Field {
	return Field{Name: name, Kind: KindRecord, Required: true, Record: rt, Description: desc}
}

func listOf(f Field) Field {
	f.List = true
	return f
}

func nonEmpty(f Field) Field {
	f.List = true
	f.NonEmpty = true
	f.Required = true
	return f
}

func optional(f Field) Field {
	f.Required = false
	return f
}

func withDefault(f Field, v interface{}) Field {
	f.Default = v
	return f
}

var declarations = []Declaration{
	{
		Type:        RecordTypeCatalogedResource,
		Description: "Basic metadata schema for a cataloged resource.",
		Fields: []Field{
			str("title", "A name given to the resource."),
			enum("usgsAssetType", UsgsAssetTypeEnumValues(), "The type of asset cataloged."),
			str("description", "A free-text account of the resource."),
			dateTime("usgsCreated", "Date and time that the resource's record was created in the catalog."),
			dateTime("usgsModified", "Date and time that the resource's record was last modified."),
			optional(uri("identifier", "A unique identifier of the resource, represented by a URI.")),
			str("usgsIdentifier", "Identifier used to internally identify a resource within a particular system."),
			enum("accessRights", AccessRightsEnumValues(), "Who can access the resource or its security status."),
		},
	},
	{
		Type:        RecordTypeDataset,
		Extends:     RecordTypeCatalogedResource,
		Description: "A collection of data, published or curated by a single agent, available in one or more representations.",
		Fields: []Field{
			dateTime("issued", "Date of formal issuance of the resource."),
			optional(dateTime("modified", "Most recent date on which the resource was changed.")),
			nonEmpty(record("creator", RecordTypeCreator, "The entities responsible for producing the resource, in citation order.")),
			record("publisher", RecordTypeEntity, "The entity responsible for making the resource available."),
			str("usgsCitation", "The recommended citation for the resource."),
			record("contactPoint", RecordTypeEntity, "Relevant contact information for the cataloged resource."),
			record("usgsMetadataContactPoint", RecordTypeEntity, "The entity responsible for creating and maintaining the metadata."),
			record("license", RecordTypeLicense, "A legal document under which the resource is made available."),
			record("usgsDataSource", RecordTypeUsgsDataSource, "The Science Center or Program responsible for managing the resource."),
			nonEmpty(record("distribution", RecordTypeDistribution, "An available distribution of the dataset.")),
			listOf(record("component", RecordTypeComponent, "Subsets of the dataset that need additional metadata.")),
			optional(listOf(record("keyword", RecordTypeKeyword, "Keywords or tags describing the resource."))),
			optional(record("spatial", RecordTypeLocation, "The geographical area covered by the dataset.")),
			optional(listOf(record("temporal", RecordTypePeriodOfTime, "The temporal periods that the dataset covers."))),
			optional(listOf(record("relation", RecordTypeRelatedIdentifier, "Resources with a relationship to the cataloged resource."))),
			optional(listOf(record("alternateIdentifier", RecordTypeAlternateIdentifier, "Identifiers other than the primary identifier."))),
			optional(str("usgsPurpose", "A summary of the intentions with which the resource was developed.")),
			optional(record("usgsMissionArea", RecordTypeUsgsMissionArea, "The Mission Area responsible for managing the resource.")),
			optional(record("qualifiedAttribution", RecordTypeContributor, "An agent having some form of responsibility for the resource.")),
			optional(record("versionHistory", RecordTypeVersionHistory, "Versions of the dataset described within a given identifier.")),
		},
	},
	{
		Type:        RecordTypeDataRelease,
		Extends:     RecordTypeDataset,
		Description: "A Dataset with the properties necessary for curating data within a data repository.",
		Fields: []Field{
			withDefault(enum("status", StatusEnumValues(), "The status of a data release within the curation process."), StatusEnum_Created.String()),
			withDefault(enum("usgsReleaseType", UsgsReleaseTypeEnumValues(), "The type of release."), UsgsReleaseTypeEnum_DataRelease.String()),
		},
	},
	{
		Type:        RecordTypeDistribution,
		Description: "A specific representation of a dataset.",
		Fields: []Field{
			optional(str("title", "Free text description of the distribution.")),
			optional(str("name", "File name for downloadable files.")),
			optional(str("description", "Description of the type of distribution.")),
			optional(str("format", "File format, only used when no IANA media type is available.")),
			optional(str("mediaType", "IANA media type.")),
			optional(uri("downloadURL", "The URL of the downloadable file in a given format.")),
			optional(uri("accessURL", "A URL of the resource that gives access to a distribution of the dataset.")),
			optional(integer("byteSize", "The size of a distribution in bytes.")),
			optional(record("checksum", RecordTypeChecksum, "Checksum value and algorithm of the file contents.")),
			record("modifiedBy", RecordTypeEntity, "The person or service that last modified the distribution."),
			dateTime("modified", "The timestamp of when the distribution was last modified."),
			boolean("useForPreview", "Whether an image file should be used as a preview image."),
		},
	},
	{
		Type:        RecordTypeChecksum,
		Description: "A value that allows to check the integrity of the contents of a file.",
		Fields: []Field{
			str("algorithm", "The algorithm used to produce the checksum (SPDX)."),
			str("checksumValue", "Lowercase hexadecimal encoded digest value."),
		},
	},
	{
		Type:        RecordTypeEntity,
		Description: "Person, Organization, or Service related to a resource.",
		Fields: []Field{
			optional(str("entity_id", "Identifier to uniquely identify an entity within a given system.")),
			str("name", "Name by which an entity is known."),
			enum("nameType", NameTypeEnumValues(), "The type of entity described by a name."),
			optional(str("nameIdentifier", "A globally unique persistent identifier for an entity.")),
			optional(str("email", "Email address of the entity.")),
		},
	},
	{
		Type:        RecordTypeCreator,
		Extends:     RecordTypeEntity,
		Description: "The entity responsible for producing the resource.",
		Fields: []Field{
			integer("position", "Position that the creator appears within a citation."),
			optional(str("affiliation", "The organization with which a creator is affiliated.")),
			optional(str("affiliationIdentifier", "A globally unique persistent identifier for the affiliated organization.")),
		},
	},
	{
		Type:        RecordTypeContributor,
		Extends:     RecordTypeCreator,
		Description: "The institution or person contributing to the development of the resource.",
		Fields: []Field{
			enum("contributorType", ContributorTypeEnumValues(), "The type of contributor of the resource."),
		},
	},
	{
		Type:        RecordTypeLicense,
		Description: "A legal document under which the resource is made available.",
		Fields: []Field{
			optional(str("licenseIdentifier", "A short, standardized version of the license name.")),
			str("license", "The full license name or free text description of the rights."),
			optional(uri("licenseUri", "The URI of the license.")),
			optional(str("licenseIdentifierScheme", "The name of the license identifier scheme.")),
			optional(uri("schemeUri", "The URI of the license identifier scheme.")),
		},
	},
	{
		Type:        RecordTypeLocation,
		Description: "A spatial region or named place.",
		Fields: []Field{
			optional(record("bbox", RecordTypeBoundingBox, "The spatial limits of a bounding box.")),
			optional(record("centroid", RecordTypeCentroid, "The coordinates of the Location's centroid.")),
		},
	},
	{
		Type:        RecordTypeBoundingBox,
		Description: "The spatial limits of a bounding box.",
		Fields: []Field{
			float("westBoundLongitude", "Western longitudinal dimension of the bounding box."),
			float("eastBoundLongitude", "Eastern longitudinal dimension of the bounding box."),
			float("southBoundLatitude", "Southern latitudinal dimension of the bounding box."),
			float("northBoundLatitude", "Northern latitudinal dimension of the bounding box."),
		},
	},
	{
		Type:        RecordTypeCentroid,
		Description: "The longitude and latitude coordinates of a centroid.",
		Fields: []Field{
			float("pointLongitude", "Longitude in decimal degrees."),
			float("pointLatitude", "Latitude in decimal degrees."),
		},
	},
	{
		Type:        RecordTypeKeyword,
		Description: "A keyword or tag describing the resource.",
		Fields: []Field{
			str("concept", "The keyword or tag."),
			optional(str("conceptScheme", "The name of the scheme, classification code or authority.")),
			optional(uri("conceptUri", "The URI of the concept.")),
		},
	},
	{
		Type:        RecordTypeRelatedIdentifier,
		Description: "Identifier of a related resource.",
		Fields: []Field{
			enum("dataciteRelationType", DataciteRelationTypeEnumValues(), "The relationship between the resource and the related resource."),
			str("relatedIdentifier", "The identifier of the related resource."),
			boolean("primaryRelatedIdentifier", "Whether the related resource is critical to understand the cataloged resource."),
			enum("relatedIdentifierType", RelatedIdentifierTypeEnumValues(), "The type of related identifier."),
		},
	},
	{
		Type:        RecordTypeAlternateIdentifier,
		Description: "An identifier other than the primary identifier applied to the resource.",
		Fields: []Field{
			str("identifier", "The alternate identifier."),
			enum("identifierType", AlternateIdentifierTypeEnumValues(), "The type of alternate identifier."),
		},
	},
	{
		Type:        RecordTypePeriodOfTime,
		Description: "An interval of time defined by its start and end dates. The interval can be open.",
		Fields: []Field{
			optional(dateTime("startDate", "The start of the period.")),
			optional(dateTime("endDate", "The end of the period.")),
		},
	},
	{
		Type:        RecordTypeUsgsDataSource,
		Description: "The Science Center or Program responsible for managing the resource.",
		Fields: []Field{
			str("name", "Name from the organizational directory."),
			str("dataSourceId", "Identifier from the organizational directory."),
		},
	},
	{
		Type:        RecordTypeUsgsMissionArea,
		Description: "The Mission Area responsible for managing the resource.",
		Fields: []Field{
			str("name", "Name from the organizational directory."),
			str("missionAreaId", "Identifier from the organizational directory."),
		},
	},
	{
		Type:        RecordTypeVersionHistory,
		Description: "Description of versions of the dataset described within a given identifier.",
		Fields: []Field{
			optional(str("version", "The version indicator of a resource.")),
			optional(dateTime("issued", "Date of formal issuance of the version.")),
			optional(str("versionNotes", "Changes between this version and the previous version.")),
		},
	},
	{
		Type:        RecordTypeComponent,
		Description: "A subset of a Dataset that requires additional descriptive metadata.",
		Fields: []Field{
			optional(uri("identifier", "A granular DOI used to identify the component.")),
			str("title", "Name given to the component."),
			str("description", "Free-text description of the component."),
			str("usgsCitation", "The recommended citation for the component."),
			boolean("catalogRecord", "Whether the metadata is cataloged independently from the Dataset."),
			listOf(record("distribution", RecordTypeDistribution, "An available distribution of the component.")),
			optional(record("alternateIdentifier", RecordTypeAlternateIdentifier, "Metadata PID of the component.")),
		},
	},
}

var declarationIndex = func() map[RecordType]*Declaration {
	idx := make(map[RecordType]*Declaration, len(declarations))
	for i := range declarations {
		idx[declarations[i].Type] = &declarations[i]
	}
	return idx
}()

// RecordTypes returns every declared record type.
func RecordTypes() []RecordType {
	types := make([]RecordType, 0, len(declarations))
	for _, d := range declarations {
		types = append(types, d.Type)
	}
	return types
}

// Lookup returns the declaration of a record type.
func Lookup(rt RecordType) (*Declaration, error) {
	d, ok := declarationIndex[rt]
	if !ok {
		return nil, fmt.Errorf("unknown record type %q", rt)
	}
	return d, nil
}

// Fields returns the full field set of a record type, inherited fields first.
func Fields(rt RecordType) ([]Field, error) {
	d, err := Lookup(rt)
	if err != nil {
		return nil, err
	}
	var fields []Field
	if d.Extends != "" {
		parent, err := Fields(d.Extends)
		if err != nil {
			return nil, err
		}
		fields = append(fields, parent...)
	}
	return append(fields, d.Fields...), nil
}

func mustFields(rt RecordType) []Field {
	fields, err := Fields(rt)
	if err != nil {
		panic(err)
	}
	return fields
}
