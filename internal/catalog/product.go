package catalog

// Key prefixes shared by every stored entity type. Prefix scanning is the only
// list operation the store supports, so these must never collide.
const (
	ProductPrefix = "product_"

	// SeedMarkerKey records that the curated sample set has been installed.
	// It replaces the old "any product has more than one image" heuristic
	// with a direct lookup.
	SeedMarkerKey = "seed_marker"
)

// Categories is the fixed category enumeration. Subcategories are free-form
// and scoped to their category by convention.
var Categories = []string{"Men", "Women", "Kids"}

// Product is the typed shape of a catalog record. Stored documents are
// schemaless JSON, admin create/update may persist partial or invalid drafts,
// so reads go through map documents and this struct is used where a full
// record is being composed (seeding, tests).
type Product struct {
	ID               string   `json:"id,omitempty"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	Category         string   `json:"category"`
	Subcategory      string   `json:"subcategory"`
	InStock          bool     `json:"inStock"`
	Images           []string `json:"images"`
	Gsm              string   `json:"gsm,omitempty"`
	Sizes            []string `json:"sizes,omitempty"`
	Fabric           string   `json:"fabric,omitempty"`
	StitchingDetails string   `json:"stitchingDetails,omitempty"`
	CreatedAt        string   `json:"createdAt,omitempty"`
	UpdatedAt        string   `json:"updatedAt,omitempty"`
}

// Draft converts the product to a document suitable for Repository.Create.
func (p Product) Draft() (map[string]interface{}, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Valid reports whether a stored product document is complete enough to be
// shown: id, name, description and category present, a numeric price, and at
// least one non-empty image URL. Writes never enforce this; only maintenance
// checks it.
func Valid(doc map[string]interface{}) bool {
	if doc == nil {
		return false
	}
	for _, field := range []string{"id", "name", "description", "category"} {
		if s, ok := doc[field].(string); !ok || s == "" {
			return false
		}
	}
	if _, ok := doc["price"].(float64); !ok {
		return false
	}
	images, ok := doc["images"].([]interface{})
	if !ok || len(images) == 0 {
		return false
	}
	for _, img := range images {
		if s, ok := img.(string); !ok || s == "" {
			return false
		}
	}
	return true
}
