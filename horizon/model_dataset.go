package horizon

// Dataset is a collection of data published or curated by a single agent and
// available in one or more distributions.
type Dataset struct {
	CatalogedResource

	Issued   Timestamp  `json:"issued"`
	Modified *Timestamp `json:"modified,omitempty"`

	// Ordered by citation position.
	Creator                  []Creator      `json:"creator" validate:"dive"`
	Publisher                Entity         `json:"publisher"`
	UsgsCitation             string         `json:"usgsCitation"`
	ContactPoint             Entity         `json:"contactPoint"`
	UsgsMetadataContactPoint Entity         `json:"usgsMetadataContactPoint"`
	License                  License        `json:"license"`
	UsgsDataSource           UsgsDataSource `json:"usgsDataSource"`
	Distribution             []Distribution `json:"distribution" validate:"dive"`
	Component                []Component    `json:"component" validate:"dive"`

	// Optional lists are nil when absent, an explicit empty list is kept.
	Keyword              *[]Keyword             `json:"keyword,omitempty"`
	Spatial              *Location              `json:"spatial,omitempty"`
	Temporal             *[]PeriodOfTime        `json:"temporal,omitempty" validate:"omitempty,dive"`
	Relation             *[]RelatedIdentifier   `json:"relation,omitempty"`
	AlternateIdentifier  *[]AlternateIdentifier `json:"alternateIdentifier,omitempty"`
	UsgsPurpose          *string                `json:"usgsPurpose,omitempty"`
	UsgsMissionArea      *UsgsMissionArea       `json:"usgsMissionArea,omitempty"`
	QualifiedAttribution *Contributor           `json:"qualifiedAttribution,omitempty"`
	VersionHistory       *VersionHistory        `json:"versionHistory,omitempty"`
}

func (Dataset) RecordType() RecordType { return RecordTypeDataset }

// Component is a subset of a Dataset that needs its own descriptive metadata.
// Its distributions are independent from the ones of the parent Dataset.
type Component struct {
	// A granular DOI, different from the one of the Dataset.
	Identifier   *string `json:"identifier,omitempty"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	UsgsCitation string  `json:"usgsCitation"`
	// Whether the component is cataloged independently from the Dataset.
	CatalogRecord       bool                 `json:"catalogRecord"`
	Distribution        []Distribution       `json:"distribution" validate:"dive"`
	AlternateIdentifier *AlternateIdentifier `json:"alternateIdentifier,omitempty"`
}

func (Component) RecordType() RecordType { return RecordTypeComponent }

// Keyword is a keyword or tag describing the resource.
type Keyword struct {
	Concept       string  `json:"concept"`
	ConceptScheme *string `json:"conceptScheme,omitempty"`
	ConceptURI    *string `json:"conceptUri,omitempty"`
}

func (Keyword) RecordType() RecordType { return RecordTypeKeyword }

// RelatedIdentifier identifies a resource related to the cataloged resource.
type RelatedIdentifier struct {
	DataciteRelationType DataciteRelationTypeEnum `json:"dataciteRelationType"`
	RelatedIdentifier    string                   `json:"relatedIdentifier"`
	// Whether the related resource was developed alongside the cataloged
	// resource and is critical to understand it.
	PrimaryRelatedIdentifier bool                      `json:"primaryRelatedIdentifier"`
	RelatedIdentifierType    RelatedIdentifierTypeEnum `json:"relatedIdentifierType"`
}

func (RelatedIdentifier) RecordType() RecordType { return RecordTypeRelatedIdentifier }

// AlternateIdentifier is an identifier other than the primary one.
type AlternateIdentifier struct {
	Identifier     string                      `json:"identifier"`
	IdentifierType AlternateIdentifierTypeEnum `json:"identifierType"`
}

func (AlternateIdentifier) RecordType() RecordType { return RecordTypeAlternateIdentifier }

// PeriodOfTime is an interval of time, possibly open on either side.
type PeriodOfTime struct {
	StartDate *Timestamp `json:"startDate,omitempty"`
	EndDate   *Timestamp `json:"endDate,omitempty"`
}

func (PeriodOfTime) RecordType() RecordType { return RecordTypePeriodOfTime }

// UsgsDataSource is the Science Center or Program managing the resource. Both
// values come from the organizational directory service.
type UsgsDataSource struct {
	Name         string `json:"name"`
	DataSourceID string `json:"dataSourceId"`
}

func (UsgsDataSource) RecordType() RecordType { return RecordTypeUsgsDataSource }

// UsgsMissionArea is the Mission Area managing the resource.
type UsgsMissionArea struct {
	Name          string `json:"name"`
	MissionAreaID string `json:"missionAreaId"`
}

func (UsgsMissionArea) RecordType() RecordType { return RecordTypeUsgsMissionArea }

// VersionHistory describes the versions of a dataset under one identifier.
type VersionHistory struct {
	Version      *string    `json:"version,omitempty"`
	Issued       *Timestamp `json:"issued,omitempty"`
	VersionNotes *string    `json:"versionNotes,omitempty"`
}

func (VersionHistory) RecordType() RecordType { return RecordTypeVersionHistory }
