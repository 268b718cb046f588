package source

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"time"

	"sdnscreen/pkg/platform/sentinel"
)

// PublishInfo is the header OFAC prints ahead of the entries.
type PublishInfo struct {
	PublishDate string `json:"publishDate" xml:"Publish_Date"`
	RecordCount int    `json:"recordCount" xml:"Record_Count"`
}

// Published parses PublishDate, which OFAC writes as MM/DD/YYYY.
func (p PublishInfo) Published() (time.Time, error) {
	return time.Parse("01/02/2006", p.PublishDate)
}

// ReadPublishInfo reads the <publshInformation> header (the misspelling is
// OFAC's). It stops at the first entry, so only the head of the document is
// read.
func ReadPublishInfo(r io.Reader) (PublishInfo, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return PublishInfo{}, fmt.Errorf("publish information: %w", sentinel.ErrNotFound)
		}
		if err != nil {
			return PublishInfo{}, fmt.Errorf("read publish information: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "publshInformation":
			var info PublishInfo
			if err := dec.DecodeElement(&info, &start); err != nil {
				return PublishInfo{}, fmt.Errorf("decode publish information: %w", err)
			}
			return info, nil
		case "sdnEntry":
			return PublishInfo{}, fmt.Errorf("publish information: %w", sentinel.ErrNotFound)
		}
	}
}
