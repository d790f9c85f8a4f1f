package production

import (
	"time"

	"github.com/georgemunganga/productions-api/internal/modules/productiondata"
)

// Production is a titled work attributed to a responsible user. It owns the
// production data records listed in ListOfProductions, in that order; the
// records hold no reference back.
type Production struct {
	ID                string    `json:"id" bson:"_id"`
	Title             string    `json:"title" bson:"title"`
	Subtitle          string    `json:"subtitle" bson:"subtitle"`
	Responsible       string    `json:"responsible" bson:"responsible"`
	Situation         string    `json:"situation" bson:"situation"`
	ListOfProductions []string  `json:"listOfProductions" bson:"listOfProductions"`
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updatedAt"`
}

// View is a production with its member ids replaced by the records they
// reference. A member that no longer exists is a nil entry at its position.
type View struct {
	ID                    string                   `json:"id"`
	Title                 string                   `json:"title"`
	Subtitle              string                   `json:"subtitle"`
	Responsible           string                   `json:"responsible"`
	Situation             string                   `json:"situation"`
	ListOfProductionsData []*productiondata.Record `json:"listOfProductionsData"`
	CreatedAt             time.Time                `json:"createdAt"`
	UpdatedAt             time.Time                `json:"updatedAt"`
}

type productionFields struct {
	Title             *string  `json:"title"`
	Subtitle          *string  `json:"subtitle"`
	Responsible       *string  `json:"responsible"`
	Situation         *string  `json:"situation"`
	ListOfProductions []string `json:"listOfProductions"`
}
