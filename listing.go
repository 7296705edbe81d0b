package aliscout

import "context"

// Listing represents one scraped product before persistence.
type Listing struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	ItemURL  string `json:"itemUrl"`
	ImageURL string `json:"imageUrl"`
	// Price is kept as display text; the source mixes currencies and
	// ranges, so it is never parsed to a number.
	Price string `json:"price"`
	Store string `json:"store"`
}

// Validate returns an error if the listing contains invalid fields.
// A listing with any field missing is a parse failure, not a partial record.
func (l *Listing) Validate() error {
	if l.Category == "" {
		return Errorf(EINVALID, "listing category required")
	}
	if l.Name == "" {
		return Errorf(EINVALID, "listing name required")
	}
	if l.ItemURL == "" {
		return Errorf(EINVALID, "listing item URL required")
	}
	if l.ImageURL == "" {
		return Errorf(EINVALID, "listing image URL required")
	}
	if l.Price == "" {
		return Errorf(EINVALID, "listing price required")
	}
	if l.Store == "" {
		return Errorf(EINVALID, "listing store required")
	}
	return nil
}

// ListingWriter persists a batch of listings as a flat-file snapshot.
type ListingWriter interface {
	// Save writes one file per run, named deterministically from the
	// run's category, and returns the path of the written file.
	Save(ctx context.Context, listings []*Listing, category string) (string, error)
}
