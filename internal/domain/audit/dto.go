package audit

import (
	"encoding/json"
	"time"
)

// EntryResponse keeps the original wire keys ("user", "timestamp") of the
// audit API.
type EntryResponse struct {
	ID          int64           `json:"id"`
	Action      Action          `json:"action"`
	EntityType  string          `json:"entity_type"`
	EntityID    *int64          `json:"entity_id"`
	User        string          `json:"user"`
	OldValues   json.RawMessage `json:"old_values"`
	NewValues   json.RawMessage `json:"new_values"`
	Timestamp   string          `json:"timestamp"`
	Description *string         `json:"description"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		Action:      e.Action,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		User:        e.Actor,
		OldValues:   e.OldValues,
		NewValues:   e.NewValues,
		Timestamp:   e.CreatedAt.Format(time.RFC3339),
		Description: e.Description,
	}
}

func ToResponseList(entries []Entry) []EntryResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, ToResponse(e))
	}
	return responses
}

// StatsResponse is the wire representation of audit log statistics.
type StatsResponse struct {
	TotalLogs int64            `json:"total_logs"`
	ByAction  map[string]int64 `json:"by_action"`
	LatestLog *EntryResponse   `json:"latest_log"`
}

func ToStatsResponse(s Stats) StatsResponse {
	resp := StatsResponse{
		TotalLogs: s.TotalLogs,
		ByAction:  s.ByAction,
	}
	if s.LatestLog != nil {
		latest := ToResponse(*s.LatestLog)
		resp.LatestLog = &latest
	}
	return resp
}
