package horizon

// Location is a spatial region or named place.
type Location struct {
	BBox     *BoundingBox `json:"bbox,omitempty"`
	Centroid *Centroid    `json:"centroid,omitempty"`
}

func (Location) RecordType() RecordType { return RecordTypeLocation }

// BoundingBox holds the spatial limits of a box in decimal degrees.
type BoundingBox struct {
	WestBoundLongitude float64 `json:"westBoundLongitude" validate:"longitude"`
	EastBoundLongitude float64 `json:"eastBoundLongitude" validate:"longitude"`
	SouthBoundLatitude float64 `json:"southBoundLatitude" validate:"latitude,ltefield=NorthBoundLatitude"`
	NorthBoundLatitude float64 `json:"northBoundLatitude" validate:"latitude"`
}

func (BoundingBox) RecordType() RecordType { return RecordTypeBoundingBox }

// Centroid is the point at the center of a Location.
type Centroid struct {
	PointLongitude float64 `json:"pointLongitude" validate:"longitude"`
	PointLatitude  float64 `json:"pointLatitude" validate:"latitude"`
}

func (Centroid) RecordType() RecordType { return RecordTypeCentroid }
