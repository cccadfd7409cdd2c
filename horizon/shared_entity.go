package horizon

// Entity is a person, organization or service related to a resource.
type Entity struct {
	// Identifies the entity within a given system.
	EntityID *string      `json:"entity_id,omitempty"`
	Name     string       `json:"name"`
	NameType NameTypeEnum `json:"nameType"`
	// A globally unique persistent identifier, e.g. ORCID iD or ROR ID.
	NameIdentifier *string `json:"nameIdentifier,omitempty"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
}

func (Entity) RecordType() RecordType { return RecordTypeEntity }

// Creator is the entity responsible for producing the resource.
type Creator struct {
	Entity

	// Position of the creator within the citation.
	Position              int64   `json:"position" validate:"gte=1"`
	Affiliation           *string `json:"affiliation,omitempty"`
	AffiliationIdentifier *string `json:"affiliationIdentifier,omitempty"`
}

func (Creator) RecordType() RecordType { return RecordTypeCreator }

// Contributor is the institution or person responsible for collecting,
// managing, distributing or otherwise contributing to the resource.
type Contributor struct {
	Creator

	ContributorType ContributorTypeEnum `json:"contributorType"`
}

func (Contributor) RecordType() RecordType { return RecordTypeContributor }
