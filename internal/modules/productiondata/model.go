package productiondata

import (
	"encoding/json"
	"time"
)

// Record is an opaque sub-record owned by a Production. Only its identity
// matters to the owner; Data is stored and returned as given.
type Record struct {
	ID        string          `json:"id"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
