package handler

import (
	"sdnscreen/internal/screening"
	"sdnscreen/internal/screening/service"
	"sdnscreen/internal/source"
)

// SearchResponse lists the matching records in document order.
type SearchResponse struct {
	SearchID string                `json:"search_id"`
	Matches  []screening.SdnRecord `json:"matches"`
	Count    int                   `json:"count"`
}

// FromResult maps a service result to the response body. Matches is never
// null on the wire.
func FromResult(result *service.Result) SearchResponse {
	matches := result.Matches
	if matches == nil {
		matches = []screening.SdnRecord{}
	}
	return SearchResponse{
		SearchID: result.SearchID,
		Matches:  matches,
		Count:    len(matches),
	}
}

// InfoResponse describes the loaded list.
type InfoResponse struct {
	PublishDate string `json:"publish_date"`
	RecordCount int    `json:"record_count"`
}

// FromPublishInfo maps the publish header to the response body.
func FromPublishInfo(info source.PublishInfo) InfoResponse {
	return InfoResponse{
		PublishDate: info.PublishDate,
		RecordCount: info.RecordCount,
	}
}
