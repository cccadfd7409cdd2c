package horizon

// CatalogedResource is the basic metadata of a resource in the catalog.
type CatalogedResource struct {
	// A name given to the resource.
	Title string `json:"title"`
	// The type of asset cataloged.
	UsgsAssetType UsgsAssetTypeEnum `json:"usgsAssetType"`
	// A free-text account of the resource.
	Description string `json:"description"`
	// When the record was created in the catalog.
	UsgsCreated Timestamp `json:"usgsCreated"`
	// When the record was last modified.
	UsgsModified Timestamp `json:"usgsModified"`
	// URI uniquely identifying the resource, e.g. a DOI.
	Identifier *string `json:"identifier,omitempty"`
	// Identifier used internally by a particular system.
	UsgsIdentifier string `json:"usgsIdentifier"`
	// Who can access the resource.
	AccessRights AccessRightsEnum `json:"accessRights"`
}

func (CatalogedResource) RecordType() RecordType { return RecordTypeCatalogedResource }
