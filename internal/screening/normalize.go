package screening

import (
	"bytes"
	"encoding/xml"
	"errors"

	pstrings "sdnscreen/pkg/platform/strings"
)

// Normalize parses one entry fragment and canonicalizes it for matching.
// It returns ok == false, with no error, for entries that are not
// individuals. Markup that cannot be parsed yields a *ParseError.
func Normalize(entry RawEntry) (SdnRecord, bool, error) {
	var rec SdnRecord
	dec := xml.NewDecoder(bytes.NewReader(entry))
	if err := dec.Decode(&rec); err != nil {
		return SdnRecord{}, false, newParseError(entry, dec.InputOffset(), err)
	}
	if rec.SdnType != SdnTypeIndividual {
		return SdnRecord{}, false, nil
	}
	rec.XMLName = xml.Name{}
	normalizeRecord(&rec)
	return rec, true, nil
}

// normalizeRecord folds every string field in place and replaces absent lists
// with empty ones.
func normalizeRecord(rec *SdnRecord) {
	rec.UID = fold(rec.UID)
	rec.Title = fold(rec.Title)
	rec.FirstName = foldName(rec.FirstName)
	rec.LastName = foldName(rec.LastName)
	rec.SdnType = fold(rec.SdnType)
	rec.Remarks = fold(rec.Remarks)

	rec.ProgramList = orEmpty(rec.ProgramList)
	for i := range rec.ProgramList {
		rec.ProgramList[i] = fold(rec.ProgramList[i])
	}

	rec.IDList = orEmpty(rec.IDList)
	for i := range rec.IDList {
		d := &rec.IDList[i]
		d.UID = fold(d.UID)
		d.IDType = fold(d.IDType)
		d.IDNumber = fold(d.IDNumber)
		d.IDCountry = fold(d.IDCountry)
	}

	rec.AkaList = orEmpty(rec.AkaList)
	for i := range rec.AkaList {
		a := &rec.AkaList[i]
		a.UID = fold(a.UID)
		a.Type = fold(a.Type)
		a.Category = fold(a.Category)
		a.FirstName = foldName(a.FirstName)
		a.LastName = foldName(a.LastName)
	}

	rec.AddressList = orEmpty(rec.AddressList)
	for i := range rec.AddressList {
		a := &rec.AddressList[i]
		a.UID = fold(a.UID)
		a.Address1 = fold(a.Address1)
		a.Address2 = fold(a.Address2)
		a.Address3 = fold(a.Address3)
		a.City = fold(a.City)
		a.StateOrProvince = fold(a.StateOrProvince)
		a.PostalCode = fold(a.PostalCode)
		a.Country = fold(a.Country)
	}

	rec.DateOfBirthList = orEmpty(rec.DateOfBirthList)
	for i := range rec.DateOfBirthList {
		d := &rec.DateOfBirthList[i]
		d.UID = fold(d.UID)
		d.DateOfBirth = fold(d.DateOfBirth)
		d.MainEntry = fold(d.MainEntry)
	}

	rec.PlaceOfBirthList = orEmpty(rec.PlaceOfBirthList)
	for i := range rec.PlaceOfBirthList {
		p := &rec.PlaceOfBirthList[i]
		p.UID = fold(p.UID)
		p.PlaceOfBirth = fold(p.PlaceOfBirth)
		p.MainEntry = fold(p.MainEntry)
	}

	rec.NationalityList = foldNationalities(orEmpty(rec.NationalityList))
	rec.CitizenshipList = foldNationalities(orEmpty(rec.CitizenshipList))
}

func foldNationalities(list []Nationality) []Nationality {
	for i := range list {
		n := &list[i]
		n.UID = fold(n.UID)
		n.Country = fold(n.Country)
		n.MainEntry = fold(n.MainEntry)
	}
	return list
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func fold(s string) string {
	return pstrings.Fold(s)
}

func foldName(s string) string {
	return pstrings.FoldWords(s)
}

// newParseError locates a decoder failure inside the fragment. Syntax errors
// carry their own line; other failures are located from the byte offset.
func newParseError(entry RawEntry, offset int64, err error) *ParseError {
	if offset > int64(len(entry)) {
		offset = int64(len(entry))
	}
	pe := &ParseError{
		Line:   1 + bytes.Count(entry[:offset], []byte{'\n'}),
		Offset: offset,
		Reason: err.Error(),
		Err:    err,
	}
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		pe.Line = syntaxErr.Line
		pe.Reason = syntaxErr.Msg
	}
	return pe
}
