package screening

import "encoding/xml"

// RawEntry is the markup of a single <sdnEntry> element, from the line holding
// the open tag up to and including the close tag.
type RawEntry []byte

// SdnTypeIndividual is the only entry type that reaches the matcher. It is
// compared against the published value before normalization.
const SdnTypeIndividual = "Individual"

// SdnRecord is one normalized sanctioned individual.
type SdnRecord struct {
	XMLName xml.Name `json:"-" xml:"sdnEntry"`

	UID              string         `json:"uid" xml:"uid"`
	Title            string         `json:"title,omitempty" xml:"title"`
	FirstName        string         `json:"firstName,omitempty" xml:"firstName"`
	LastName         string         `json:"lastName" xml:"lastName"`
	SdnType          string         `json:"sdnType" xml:"sdnType"`
	Remarks          string         `json:"remarks,omitempty" xml:"remarks"`
	ProgramList      []string       `json:"programList" xml:"programList>program"`
	IDList           []IDDocument   `json:"idList" xml:"idList>id"`
	AkaList          []Alias        `json:"akaList" xml:"akaList>aka"`
	AddressList      []Address      `json:"addressList" xml:"addressList>address"`
	DateOfBirthList  []DateOfBirth  `json:"dateOfBirthList" xml:"dateOfBirthList>dateOfBirthItem"`
	PlaceOfBirthList []PlaceOfBirth `json:"placeOfBirthList" xml:"placeOfBirthList>placeOfBirthItem"`
	NationalityList  []Nationality  `json:"nationalityList" xml:"nationalityList>nationality"`
	CitizenshipList  []Nationality  `json:"citizenshipList" xml:"citizenshipList>citizenship"`
}

// IDDocument is an identity document attached to an entry. Fields are
// lowercased only; punctuation in numbers is significant.
type IDDocument struct {
	UID       string `json:"uid" xml:"uid"`
	IDType    string `json:"idType,omitempty" xml:"idType"`
	IDNumber  string `json:"idNumber,omitempty" xml:"idNumber"`
	IDCountry string `json:"idCountry,omitempty" xml:"idCountry"`
}

// Alias is an a.k.a. of an entry. Empty names fall back to the entry's own
// names when matching.
type Alias struct {
	UID       string `json:"uid" xml:"uid"`
	Type      string `json:"type,omitempty" xml:"type"`
	Category  string `json:"category,omitempty" xml:"category"`
	FirstName string `json:"firstName,omitempty" xml:"firstName"`
	LastName  string `json:"lastName,omitempty" xml:"lastName"`
}

type Address struct {
	UID             string `json:"uid" xml:"uid"`
	Address1        string `json:"address1,omitempty" xml:"address1"`
	Address2        string `json:"address2,omitempty" xml:"address2"`
	Address3        string `json:"address3,omitempty" xml:"address3"`
	City            string `json:"city,omitempty" xml:"city"`
	StateOrProvince string `json:"stateOrProvince,omitempty" xml:"stateOrProvince"`
	PostalCode      string `json:"postalCode,omitempty" xml:"postalCode"`
	Country         string `json:"country,omitempty" xml:"country"`
}

type DateOfBirth struct {
	UID         string `json:"uid" xml:"uid"`
	DateOfBirth string `json:"dateOfBirth,omitempty" xml:"dateOfBirth"`
	MainEntry   string `json:"mainEntry,omitempty" xml:"mainEntry"`
}

type PlaceOfBirth struct {
	UID          string `json:"uid" xml:"uid"`
	PlaceOfBirth string `json:"placeOfBirth,omitempty" xml:"placeOfBirth"`
	MainEntry    string `json:"mainEntry,omitempty" xml:"mainEntry"`
}

// Nationality is shared by the nationality and citizenship lists, which have
// the same shape in the published document.
type Nationality struct {
	UID       string `json:"uid" xml:"uid"`
	Country   string `json:"country,omitempty" xml:"country"`
	MainEntry string `json:"mainEntry,omitempty" xml:"mainEntry"`
}

// Query holds customer search criteria. An empty field means the criterion
// was not supplied.
type Query struct {
	ID        string `json:"id,omitempty"`
	IDType    string `json:"id_type,omitempty"`
	Country   string `json:"country,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Normalized returns a copy of q with the same folding applied to records.
func (q Query) Normalized() Query {
	return Query{
		ID:        fold(q.ID),
		IDType:    fold(q.IDType),
		Country:   fold(q.Country),
		FirstName: foldName(q.FirstName),
		LastName:  foldName(q.LastName),
	}
}

// HasName reports whether either name criterion is present.
func (q Query) HasName() bool {
	return q.FirstName != "" || q.LastName != ""
}

// IsEmpty reports whether q carries no usable criterion.
func (q Query) IsEmpty() bool {
	return q.ID == "" && !q.HasName()
}
